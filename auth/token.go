// Package auth resolves the GitHub credential the workflow system uses.
//
// Resolution order: GITHUB_TOKEN and GH_TOKEN environment variables, then a
// `gh auth token` shell-out, then a GitHub App installation token minted
// from a private key (see app.go).
package auth

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Authentication errors.
var (
	// ErrNoToken indicates no GitHub credential could be resolved.
	ErrNoToken = errors.New("no GitHub token available")

	// ErrInvalidPrivateKey indicates the GitHub App private key is malformed.
	ErrInvalidPrivateKey = errors.New("invalid GitHub App private key")
)

// ghTokenTimeout bounds the gh CLI shell-out.
const ghTokenTimeout = 10 * time.Second

// Resolver resolves GitHub tokens.
type Resolver struct {
	ghPath string
	app    *AppConfig
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithGHPath overrides the gh binary used for the CLI fallback.
func WithGHPath(path string) ResolverOption {
	return func(r *Resolver) {
		r.ghPath = path
	}
}

// WithApp enables the GitHub App fallback.
func WithApp(app AppConfig) ResolverOption {
	return func(r *Resolver) {
		r.app = &app
	}
}

// NewResolver creates a token resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{ghPath: "gh"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the first available GitHub token.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	for _, env := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := strings.TrimSpace(os.Getenv(env)); token != "" {
			return token, nil
		}
	}

	if token := r.fromGHCLI(ctx); token != "" {
		return token, nil
	}

	if r.app != nil {
		return r.app.InstallationToken(ctx)
	}

	return "", ErrNoToken
}

// fromGHCLI asks the gh CLI for its stored token. Any failure (gh missing,
// not logged in, timeout) yields an empty string so resolution moves on.
func (r *Resolver) fromGHCLI(ctx context.Context) string {
	runCtx, cancel := context.WithTimeout(ctx, ghTokenTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.ghPath, "auth", "token")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(stdout.String())
}
