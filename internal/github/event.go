package github

import (
	"encoding/json"
	"fmt"
	"os"
)

// Event is the decoded GitHub Actions event payload. Only the fields the
// reviewer dispatches on are mapped.
type Event struct {
	Number     int              `json:"number"`
	Issue      *EventIssue      `json:"issue"`
	Repository EventRepository  `json:"repository"`
	Comment    *EventComment    `json:"comment"`
	PR         *json.RawMessage `json:"pull_request"`
}

type EventIssue struct {
	Number      int              `json:"number"`
	PullRequest *json.RawMessage `json:"pull_request"`
}

type EventRepository struct {
	FullName string `json:"full_name"`
}

type EventComment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	InReplyTo int64     `json:"in_reply_to_id"`
	User      EventUser `json:"user"`
}

type EventUser struct {
	Login string `json:"login"`
}

// LoadEvent reads and decodes the event payload. An unreadable payload is
// the one fatal input error in the system.
func LoadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}

	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to decode event payload: %w", err)
	}
	return &event, nil
}

// PRNumber resolves the pull request number from either event shape:
// pull_request events carry it at the top level, issue_comment events nest
// it under the issue.
func (e *Event) PRNumber() (int, error) {
	if e.Issue != nil && e.Issue.PullRequest != nil {
		return e.Issue.Number, nil
	}
	if e.Number != 0 {
		return e.Number, nil
	}
	return 0, fmt.Errorf("event payload carries no pull request number")
}
