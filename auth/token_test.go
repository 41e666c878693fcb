package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeGHStub writes a fake gh binary that prints token for `gh auth token`.
func writeGHStub(t *testing.T, token string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gh")
	script := "#!/bin/sh\necho " + token + "\n"
	if token == "" {
		script = "#!/bin/sh\nexit 1\n"
	}
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write gh stub: %v", err)
	}
	return path
}

func TestResolve_EnvToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("GH_TOKEN", "")

	r := NewResolver(WithGHPath("/nonexistent/gh"))
	token, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if token != "env-token" {
		t.Errorf("token = %q, want env-token", token)
	}
}

func TestResolve_GHTokenFallback(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "gh-env-token")

	r := NewResolver(WithGHPath("/nonexistent/gh"))
	token, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if token != "gh-env-token" {
		t.Errorf("token = %q, want gh-env-token", token)
	}
}

func TestResolve_GHCLIFallback(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	r := NewResolver(WithGHPath(writeGHStub(t, "cli-token")))
	token, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if token != "cli-token" {
		t.Errorf("token = %q, want cli-token", token)
	}
}

func TestResolve_NoToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	r := NewResolver(WithGHPath(writeGHStub(t, "")))
	_, err := r.Resolve(context.Background())
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("err = %v, want ErrNoToken", err)
	}
}

func TestResolve_EnvBeatsCLI(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "  env-token  ")
	t.Setenv("GH_TOKEN", "")

	r := NewResolver(WithGHPath(writeGHStub(t, "cli-token")))
	token, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// Environment wins and whitespace is trimmed.
	if token != "env-token" {
		t.Errorf("token = %q, want env-token", token)
	}
}
