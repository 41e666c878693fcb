package ghapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
)

// PRState represents the state of a pull request.
type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
	PRStateMerged PRState = "merged"
)

// PullRequest is the wrapper's view of a pull request.
type PullRequest struct {
	Number    int
	URL       string
	Title     string
	Body      string
	State     PRState
	Draft     bool
	Head      string
	Base      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Labels    []string
	Assignees []string
}

// PROptions configures pull request creation.
type PROptions struct {
	Title  string // Required
	Body   string
	Base   string // Target branch (default: "main")
	Head   string // Source branch (required)
	Labels []string
	Draft  bool
}

// PRUpdateOptions configures pull request updates. Nil pointer fields are
// left unchanged.
type PRUpdateOptions struct {
	Title  *string
	Body   *string
	Base   *string
	Labels []string // Replaces existing labels when non-nil
}

// CreatePR creates a new pull request.
func (c *Client) CreatePR(ctx context.Context, opts PROptions) (*PullRequest, error) {
	base := opts.Base
	if base == "" {
		base = "main"
	}

	newPR := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Body:  github.String(opts.Body),
		Base:  github.String(base),
		Head:  github.String(opts.Head),
		Draft: github.Bool(opts.Draft),
	}

	pr, resp, err := c.gh.PullRequests.Create(ctx, c.owner, c.repo, newPR)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			if strings.Contains(err.Error(), "A pull request already exists") {
				return nil, ErrPRExists
			}
			if strings.Contains(err.Error(), "No commits between") {
				return nil, ErrNoChanges
			}
		}
		return nil, fmt.Errorf("create PR: %w", err)
	}

	if len(opts.Labels) > 0 {
		_, _, err = c.gh.Issues.AddLabelsToIssue(ctx, c.owner, c.repo, pr.GetNumber(), opts.Labels)
		if err != nil {
			// PR was created; label failure is not fatal
			slog.Warn("failed to add labels to PR", "error", err, "pr", pr.GetNumber())
		}
	}

	return fromGitHub(pr), nil
}

// GetPR retrieves a pull request by number.
func (c *Client) GetPR(ctx context.Context, number int) (*PullRequest, error) {
	pr, resp, err := c.gh.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrPRNotFound
		}
		return nil, fmt.Errorf("get PR: %w", err)
	}
	return fromGitHub(pr), nil
}

// UpdatePR updates an existing pull request.
func (c *Client) UpdatePR(ctx context.Context, number int, opts PRUpdateOptions) (*PullRequest, error) {
	update := &github.PullRequest{
		Title: opts.Title,
		Body:  opts.Body,
	}
	if opts.Base != nil {
		update.Base = &github.PullRequestBranch{Ref: opts.Base}
	}

	pr, _, err := c.gh.PullRequests.Edit(ctx, c.owner, c.repo, number, update)
	if err != nil {
		return nil, fmt.Errorf("update PR: %w", err)
	}

	if opts.Labels != nil {
		_, _, err = c.gh.Issues.ReplaceLabelsForIssue(ctx, c.owner, c.repo, number, opts.Labels)
		if err != nil {
			slog.Warn("failed to update labels", "error", err, "pr", number)
		}
	}

	return fromGitHub(pr), nil
}

// ListOpenPRs lists open pull requests, optionally filtered by head branch.
func (c *Client) ListOpenPRs(ctx context.Context, head string) ([]*PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 30},
	}
	if head != "" {
		opts.Head = c.owner + ":" + head
	}

	prs, _, err := c.gh.PullRequests.List(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("list PRs: %w", err)
	}

	result := make([]*PullRequest, len(prs))
	for i, pr := range prs {
		result[i] = fromGitHub(pr)
	}
	return result, nil
}

// fromGitHub converts a go-github PR to the wrapper type.
func fromGitHub(pr *github.PullRequest) *PullRequest {
	result := &PullRequest{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		Draft:  pr.GetDraft(),
	}

	switch pr.GetState() {
	case "open":
		result.State = PRStateOpen
	case "closed":
		if pr.GetMerged() {
			result.State = PRStateMerged
		} else {
			result.State = PRStateClosed
		}
	}

	if pr.Head != nil {
		result.Head = pr.Head.GetRef()
	}
	if pr.Base != nil {
		result.Base = pr.Base.GetRef()
	}
	if pr.CreatedAt != nil {
		result.CreatedAt = pr.CreatedAt.Time
	}
	if pr.UpdatedAt != nil {
		result.UpdatedAt = pr.UpdatedAt.Time
	}
	for _, label := range pr.Labels {
		result.Labels = append(result.Labels, label.GetName())
	}
	for _, assignee := range pr.Assignees {
		result.Assignees = append(result.Assignees, assignee.GetLogin())
	}

	return result
}
