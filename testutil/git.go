// Package testutil provides git repository and stub binary helpers for
// exercising the orchestration layer against real subprocesses.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// SetupTestRepo creates a temporary git repository with one commit on main.
// Returns the path to the repository; cleanup happens with the test.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	RunGit(t, dir, "init", "-b", "main")
	RunGit(t, dir, "config", "user.email", "test@test.com")
	RunGit(t, dir, "config", "user.name", "Test User")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test Repository\n"), 0o644); err != nil {
		t.Fatalf("failed to create README: %v", err)
	}

	RunGit(t, dir, "add", ".")
	RunGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// SetupTestRepoWithRemote creates a repository whose origin is a local bare
// repository, with main pushed. Returns the work repo path and the bare
// remote path.
func SetupTestRepoWithRemote(t *testing.T) (repo, remote string) {
	t.Helper()

	repo = SetupTestRepo(t)

	remote = t.TempDir()
	RunGit(t, remote, "init", "--bare")

	RunGit(t, repo, "remote", "add", "origin", remote)
	RunGit(t, repo, "push", "-u", "origin", "main")
	RunGit(t, repo, "remote", "set-head", "origin", "main")

	return repo, remote
}

// CreateBranch creates and checks out a branch in the test repo.
func CreateBranch(t *testing.T, dir, branch string) {
	t.Helper()
	RunGit(t, dir, "checkout", "-b", branch)
}

// CommitFile writes a file and commits it.
func CommitFile(t *testing.T, dir, path, content, message string) {
	t.Helper()

	fullPath := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}

	RunGit(t, dir, "add", ".")
	RunGit(t, dir, "commit", "-m", message)
}

// RunGit runs a git command in dir, failing the test on error.
func RunGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}
