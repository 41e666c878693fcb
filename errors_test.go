package gitflow

import (
	"errors"
	"testing"
)

func TestProcessError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ProcessError
		want string
	}{
		{
			name: "stderr preferred",
			err:  &ProcessError{Name: "git", Stderr: "remote rejected", ExitCode: 1},
			want: "git: remote rejected",
		},
		{
			name: "underlying error",
			err:  &ProcessError{Name: "gh", Err: errors.New("no such file")},
			want: "gh: no such file",
		},
		{
			name: "exit code fallback",
			err:  &ProcessError{Name: "git", ExitCode: 128},
			want: "git: exited with code 128",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessError_Unwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := &ProcessError{Name: "git", Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is did not find the wrapped error")
	}
}

func TestGitError(t *testing.T) {
	err := &GitError{Op: "push", Output: "rejected", Err: errors.New("exit 1")}
	if err.Error() != "push: rejected" {
		t.Errorf("Error() = %q", err.Error())
	}

	bare := &GitError{Op: "push", Err: errors.New("exit 1")}
	if bare.Error() != "push: exit 1" {
		t.Errorf("Error() = %q", bare.Error())
	}

	if !errors.Is(err, err.Err) {
		t.Error("errors.Is did not find the wrapped error")
	}
}
