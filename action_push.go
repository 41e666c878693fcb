package gitflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// noUpstreamMarker is the stderr substring git emits when the current branch
// has no upstream tracking branch configured.
const noUpstreamMarker = "has no upstream branch"

// ExecutePush pushes the current branch. If the plain push fails because no
// upstream tracking branch exists, it retries once setting the upstream to
// origin/HEAD.
func (o *Orchestrator) ExecutePush(ctx context.Context, dir, actionID string) (result GitActionResult) {
	done := o.begin(ctx, PhasePushing, dir, actionID)
	defer func() { done(result) }()

	res, err := o.runProcess(ctx, processSpec{
		name:     o.gitPath,
		args:     []string{"push"},
		dir:      dir,
		timeout:  o.pushTimeout,
		actionID: actionID,
	})
	if err != nil {
		return o.failureFrom(actionID, err)
	}

	if res.ExitCode != 0 && strings.Contains(res.Stderr, noUpstreamMarker) {
		slog.Debug("no upstream branch, retrying with -u origin HEAD", "dir", dir)
		res, err = o.runProcess(ctx, processSpec{
			name:     o.gitPath,
			args:     []string{"push", "-u", "origin", "HEAD"},
			dir:      dir,
			timeout:  o.pushTimeout,
			actionID: actionID,
		})
		if err != nil {
			return o.failureFrom(actionID, err)
		}
	}

	if res.ExitCode != 0 {
		output := strings.TrimSpace(res.Stderr)
		if output == "" {
			output = fmt.Sprintf("exited with code %d", res.ExitCode)
		}
		pushErr := &GitError{Op: "push", Output: output}
		return GitActionResult{Output: strings.TrimSpace(res.Stdout), Error: pushErr.Error()}
	}

	// git writes push progress to stderr even on success.
	output := strings.TrimSpace(res.Stderr)
	if output == "" {
		output = strings.TrimSpace(res.Stdout)
	}
	return GitActionResult{Success: true, Output: output}
}
