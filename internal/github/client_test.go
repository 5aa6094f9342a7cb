package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v58/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := gh.NewClient(nil)
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return &Client{client: client, owner: "octo", repo: "r"}
}

func writeComments(w http.ResponseWriter, bodies ...string) {
	comments := make([]map[string]any, 0, len(bodies))
	for i, body := range bodies {
		comments = append(comments, map[string]any{"id": i + 1, "body": body})
	}
	_ = json.NewEncoder(w).Encode(comments)
}

// A summary sitting past the first page of review comments must still be
// visible to the singleton pre-check.
func TestSummaryCommentExistsPaginatesReviewComments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/r/pulls/1/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			writeComments(w, "noise", SummaryPrefix+"\nOverview of the change.")
			return
		}
		bodies := make([]string, 30)
		for i := range bodies {
			bodies[i] = fmt.Sprintf("inline comment %d", i)
		}
		w.Header().Set("Link", `</repos/octo/r/pulls/1/comments?page=2>; rel="next"`)
		writeComments(w, bodies...)
	})

	client := newTestClient(t, mux)
	exists, err := client.SummaryCommentExists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSummaryCommentExistsPaginatesIssueComments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/r/pulls/1/comments", func(w http.ResponseWriter, r *http.Request) {
		writeComments(w)
	})
	mux.HandleFunc("/repos/octo/r/issues/1/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			writeComments(w, SummaryPrefix+"\nOverview of the change.")
			return
		}
		w.Header().Set("Link", `</repos/octo/r/issues/1/comments?page=2>; rel="next"`)
		writeComments(w, "discussion", "more discussion")
	})

	client := newTestClient(t, mux)
	exists, err := client.SummaryCommentExists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSummaryCommentExistsNone(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/r/pulls/1/comments", func(w http.ResponseWriter, r *http.Request) {
		writeComments(w, "inline comment")
	})
	mux.HandleFunc("/repos/octo/r/issues/1/comments", func(w http.ResponseWriter, r *http.Request) {
		writeComments(w, "discussion")
	})

	client := newTestClient(t, mux)
	exists, err := client.SummaryCommentExists(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, exists)
}
