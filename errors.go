package gitflow

import (
	"errors"
	"fmt"
)

// Process orchestration errors
var (
	// ErrTimeout indicates a child process exceeded its deadline and was killed.
	ErrTimeout = errors.New("process timed out")

	// ErrCancelled indicates the action was aborted by a cancellation request.
	ErrCancelled = errors.New("action cancelled")

	// ErrAgentNotFound indicates the coding-agent CLI binary was not found.
	ErrAgentNotFound = errors.New("agent CLI not found")

	// ErrNoPR indicates no pull request exists for the current branch.
	ErrNoPR = errors.New("no existing PR for current branch")
)

// ProcessError wraps a non-zero exit from a child process, keeping the
// captured output so callers can surface it.
type ProcessError struct {
	Name     string // Program that was run (e.g. "git", "gh")
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error // Underlying error from the OS, if any
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", e.Name, e.Stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s: exited with code %d", e.Name, e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// GitError wraps a git command failure with the operation that failed.
type GitError struct {
	Op     string // Operation that failed (e.g. "push", "show-current")
	Output string // Combined stdout/stderr output
	Err    error  // Underlying error
}

func (e *GitError) Error() string {
	if e.Output != "" {
		return e.Op + ": " + e.Output
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *GitError) Unwrap() error {
	return e.Err
}
