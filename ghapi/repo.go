package ghapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
)

// DefaultBranch returns the repository's default branch name.
func (c *Client) DefaultBranch(ctx context.Context) (string, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, c.owner, c.repo)
	if err != nil {
		return "", fmt.Errorf("get repository: %w", err)
	}
	return repo.GetDefaultBranch(), nil
}

// ListBranches returns the repository's branch names.
func (c *Client) ListBranches(ctx context.Context) ([]string, error) {
	branches, _, err := c.gh.Repositories.ListBranches(ctx, c.owner, c.repo,
		&github.BranchListOptions{ListOptions: github.ListOptions{PerPage: 100}})
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.GetName()
	}
	return names, nil
}

// EnsureLabel creates the label if it does not already exist.
func (c *Client) EnsureLabel(ctx context.Context, name, color, description string) error {
	_, resp, err := c.gh.Issues.GetLabel(ctx, c.owner, c.repo, name)
	if err == nil {
		return nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("get label: %w", err)
	}

	_, _, err = c.gh.Issues.CreateLabel(ctx, c.owner, c.repo, &github.Label{
		Name:        github.String(name),
		Color:       github.String(color),
		Description: github.String(description),
	})
	if err != nil {
		return fmt.Errorf("create label: %w", err)
	}
	return nil
}

// IsCollaborator reports whether the user has collaborator access to the
// repository.
func (c *Client) IsCollaborator(ctx context.Context, user string) (bool, error) {
	ok, _, err := c.gh.Repositories.IsCollaborator(ctx, c.owner, c.repo, user)
	if err != nil {
		return false, fmt.Errorf("check collaborator: %w", err)
	}
	return ok, nil
}
