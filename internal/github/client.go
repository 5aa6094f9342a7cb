// Package github wraps the hosting API surface the reviewer needs: PR
// metadata, raw diffs, review comments, and review/reply creation.
package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v58/github"
	"golang.org/x/oauth2"
)

// SummaryPrefix marks the one-time PR summary comment. The singleton check
// scans existing comments for this prefix before posting another.
const SummaryPrefix = "### PR Summary"

// ReviewTitle is the fixed body of every batched review and doubles as the
// identity marker that follow-up detection looks for in parent comments.
const ReviewTitle = "Gemini AI Code Review"

// ErrCommentNotFound is returned when a referenced review comment no longer
// exists on the pull request.
var ErrCommentNotFound = errors.New("review comment not found")

type Client struct {
	client *github.Client
	owner  string
	repo   string
}

// PRDetails is the pull request metadata woven into prompts.
type PRDetails struct {
	Owner       string
	Repo        string
	Number      int
	Title       string
	Description string
}

// ReviewComment is the subset of a pull request review comment the
// follow-up path works with.
type ReviewComment struct {
	ID        int64
	Path      string
	Body      string
	Author    string
	InReplyTo int64
}

// PlacedComment is one hosting-API-ready inline comment. Position is a
// 1-based offset into the hunk's full line sequence, computed by the
// position mapper and never supplied by the model.
type PlacedComment struct {
	Path     string
	Position int
	Body     string
}

// NewClient creates an authenticated client for one repository. The repo is
// identified by its "owner/name" form from the event payload.
func NewClient(token, repoFullName string) (*Client, error) {
	owner, repo, err := splitFullName(repoFullName)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

func splitFullName(fullName string) (string, string, error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository name: %q", fullName)
	}
	return parts[0], parts[1], nil
}

// GetPRDetails fetches the title and description for a pull request.
func (c *Client) GetPRDetails(ctx context.Context, prNumber int) (*PRDetails, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, c.owner, c.repo, prNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR #%d: %w", prNumber, err)
	}

	return &PRDetails{
		Owner:       c.owner,
		Repo:        c.repo,
		Number:      prNumber,
		Title:       pr.GetTitle(),
		Description: pr.GetBody(),
	}, nil
}

// FetchDiff retrieves the pull request in diff content negotiation mode.
func (c *Client) FetchDiff(ctx context.Context, prNumber int) (string, error) {
	diff, _, err := c.client.PullRequests.GetRaw(ctx, c.owner, c.repo, prNumber,
		github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("failed to fetch diff for PR #%d: %w", prNumber, err)
	}
	return diff, nil
}

// SummaryCommentExists reports whether a summary comment was already posted
// on this PR, checking every page of review comments and issue comments. On
// a busy PR the summary can sit well past the first page, and missing it
// would post a duplicate.
func (c *Client) SummaryCommentExists(ctx context.Context, prNumber int) (bool, error) {
	reviewOpts := &github.PullRequestListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		comments, resp, err := c.client.PullRequests.ListComments(ctx, c.owner, c.repo, prNumber, reviewOpts)
		if err != nil {
			return false, fmt.Errorf("failed to list review comments: %w", err)
		}
		for _, comment := range comments {
			if strings.HasPrefix(comment.GetBody(), SummaryPrefix) {
				return true, nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		reviewOpts.Page = resp.NextPage
	}

	issueOpts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		comments, resp, err := c.client.Issues.ListComments(ctx, c.owner, c.repo, prNumber, issueOpts)
		if err != nil {
			return false, fmt.Errorf("failed to list issue comments: %w", err)
		}
		for _, comment := range comments {
			if strings.HasPrefix(comment.GetBody(), SummaryPrefix) {
				return true, nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		issueOpts.Page = resp.NextPage
	}

	return false, nil
}

// CreateReview posts the whole comment batch as one review.
func (c *Client) CreateReview(ctx context.Context, prNumber int, comments []PlacedComment) error {
	draft := make([]*github.DraftReviewComment, 0, len(comments))
	for _, comment := range comments {
		draft = append(draft, &github.DraftReviewComment{
			Path:     github.String(comment.Path),
			Position: github.Int(comment.Position),
			Body:     github.String(comment.Body),
		})
	}

	review := &github.PullRequestReviewRequest{
		Body:     github.String(ReviewTitle),
		Event:    github.String("COMMENT"),
		Comments: draft,
	}

	if _, _, err := c.client.PullRequests.CreateReview(ctx, c.owner, c.repo, prNumber, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListReviewComments returns all review comments on a pull request.
func (c *Client) ListReviewComments(ctx context.Context, prNumber int) ([]ReviewComment, error) {
	var all []ReviewComment
	opts := &github.PullRequestListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		comments, resp, err := c.client.PullRequests.ListComments(ctx, c.owner, c.repo, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list review comments: %w", err)
		}
		for _, comment := range comments {
			all = append(all, ReviewComment{
				ID:        comment.GetID(),
				Path:      comment.GetPath(),
				Body:      comment.GetBody(),
				Author:    comment.GetUser().GetLogin(),
				InReplyTo: comment.GetInReplyTo(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// FindReviewComment locates one review comment by id.
func (c *Client) FindReviewComment(ctx context.Context, commentID int64) (*ReviewComment, error) {
	comment, resp, err := c.client.PullRequests.GetComment(ctx, c.owner, c.repo, commentID)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, fmt.Errorf("%w: id %d", ErrCommentNotFound, commentID)
		}
		return nil, fmt.Errorf("failed to get comment %d: %w", commentID, err)
	}

	return &ReviewComment{
		ID:        comment.GetID(),
		Path:      comment.GetPath(),
		Body:      comment.GetBody(),
		Author:    comment.GetUser().GetLogin(),
		InReplyTo: comment.GetInReplyTo(),
	}, nil
}

// ReplyToComment posts a threaded reply under an existing review comment.
// When the threaded call fails, it falls back to a plain issue comment that
// quotes the parent by id, so the answer is never lost.
func (c *Client) ReplyToComment(ctx context.Context, prNumber int, commentID int64, body string) error {
	_, _, err := c.client.PullRequests.CreateCommentInReplyTo(ctx, c.owner, c.repo, prNumber, body, commentID)
	if err == nil {
		return nil
	}

	fallback := fmt.Sprintf("**In reply to [comment](%d):**\n\n%s", commentID, body)
	if _, _, fallbackErr := c.client.Issues.CreateComment(ctx, c.owner, c.repo, prNumber,
		&github.IssueComment{Body: github.String(fallback)}); fallbackErr != nil {
		return fmt.Errorf("threaded reply failed (%v) and fallback comment failed: %w", err, fallbackErr)
	}
	return nil
}
