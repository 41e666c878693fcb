package gitflow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ProcessResult is the raw outcome of one spawned child process that ran to
// natural exit. A non-zero exit code is a result, not an error; only
// timeouts, cancellations, and spawn failures are reported as errors.
type ProcessResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// processSpec describes one child process run.
type processSpec struct {
	name     string        // Program to run
	args     []string      // Arguments
	dir      string        // Working directory
	timeout  time.Duration // Deadline; the process is killed when it elapses
	actionID string        // Optional; registers the process for cancellation
}

// runProcess spawns the command and races its completion against the
// timeout. This is the only place a subprocess is spawned, raced, or killed;
// every other component goes through it.
//
// Fails with ErrCancelled if the action was already marked cancelled before
// the spawn, or if a cancellation mark is observed after the process exits
// (a kill racing natural completion can leave either outcome). Fails with
// ErrTimeout when the deadline fires first.
func (o *Orchestrator) runProcess(ctx context.Context, spec processSpec) (*ProcessResult, error) {
	if spec.actionID != "" && o.isCancelled(spec.actionID) {
		return nil, fmt.Errorf("%w before start: %s", ErrCancelled, spec.actionID)
	}

	runCtx, cancel := context.WithTimeout(ctx, spec.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, spec.name, spec.args...)
	cmd.Dir = spec.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, &ProcessError{Name: spec.name, Err: err}
	}

	if spec.actionID != "" {
		o.registerProcess(spec.actionID, cmd.Process)
		defer o.unregisterProcess(spec.actionID)
	}

	waitErr := cmd.Wait()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: %s after %v", ErrTimeout, spec.name, spec.timeout)
	}
	if spec.actionID != "" && o.isCancelled(spec.actionID) {
		return nil, fmt.Errorf("%w: %s", ErrCancelled, spec.actionID)
	}

	result := &ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, &ProcessError{
				Name:   spec.name,
				Stdout: result.Stdout,
				Stderr: result.Stderr,
				Err:    waitErr,
			}
		}
		// Non-zero exit: the caller interprets the captured output.
	}

	return result, nil
}
