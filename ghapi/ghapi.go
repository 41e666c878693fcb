// Package ghapi is a thin typed wrapper around the GitHub REST API for the
// repository, branch, label, collaborator, and pull request operations the
// workflow system needs. It does not paginate beyond the first page and does
// not manage credentials; see the auth package for token resolution.
package ghapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

var (
	// ErrPRNotFound indicates the pull request does not exist.
	ErrPRNotFound = errors.New("pull request not found")

	// ErrPRExists indicates a PR already exists for the branch.
	ErrPRExists = errors.New("pull request already exists for this branch")

	// ErrNoChanges indicates there are no commits between the branches.
	ErrNoChanges = errors.New("no changes between branches")
)

// Client wraps a go-github client scoped to one repository.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// NewClient creates a repository-scoped GitHub client.
// token is a personal access token or app installation token.
func NewClient(token, owner, repo string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		gh:    github.NewClient(tc),
		owner: owner,
		repo:  repo,
	}, nil
}

// NewClientFromRemoteURL creates a client for the repository a git remote
// URL points at.
func NewClientFromRemoteURL(token, remoteURL string) (*Client, error) {
	owner, repo, err := ParseRepoFromURL(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote URL: %w", err)
	}
	return NewClient(token, owner, repo)
}

// ParseRepoFromURL extracts owner and repo from a git remote URL, accepting
// both SSH (git@github.com:owner/repo.git) and HTTPS forms.
func ParseRepoFromURL(remoteURL string) (owner, repo string, err error) {
	if strings.HasPrefix(remoteURL, "git@") {
		parts := strings.Split(remoteURL, ":")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("invalid SSH URL format")
		}
		path := strings.TrimSuffix(parts[1], ".git")
		pathParts := strings.Split(path, "/")
		if len(pathParts) != 2 {
			return "", "", fmt.Errorf("invalid repository path")
		}
		return pathParts[0], pathParts[1], nil
	}

	remoteURL = strings.TrimPrefix(remoteURL, "https://")
	remoteURL = strings.TrimPrefix(remoteURL, "http://")
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	parts := strings.Split(remoteURL, "/")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("invalid URL format")
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// Owner returns the repository owner.
func (c *Client) Owner() string { return c.owner }

// Repo returns the repository name.
func (c *Client) Repo() string { return c.repo }
