package gitflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tacogips/gitflow/task"
)

// ExecuteUpdatePR refreshes the description of the branch's existing pull
// request so it reflects the latest diff against baseBranch. Fails fast with
// "no existing PR" before spawning anything else when the branch has no PR.
func (o *Orchestrator) ExecuteUpdatePR(ctx context.Context, dir, baseBranch, actionID string) (result GitActionResult) {
	done := o.begin(ctx, PhaseCreatingPR, dir, actionID)
	defer func() { done(result) }()

	if baseBranch == "" {
		baseBranch = "main"
	}

	view := o.fetchPRView(ctx, dir)
	if view == nil {
		return GitActionResult{Error: ErrNoPR.Error()}
	}

	slog.Debug("executing update-pr action", "pr", view.Number, "dir", dir)
	return o.invokeAgent(ctx, dir, updatePRPrompt(view, baseBranch), task.UpdatePR, actionID)
}

// updatePRPrompt frames an update of an existing PR: the description must
// reflect the latest full diff against the base branch, not be written from
// scratch as if the PR were new.
func updatePRPrompt(view *PRView, baseBranch string) string {
	return fmt.Sprintf(`Update the existing pull request #%d at %s.

The branch has changed since the PR description was written. Run
'git log %s..HEAD' and 'git diff %s...HEAD' to review the complete current
set of changes, then revise the PR title and body with 'gh pr edit %d' so
they accurately describe the branch as it stands now. Keep whatever parts of
the existing description are still accurate.`,
		view.Number, view.URL, baseBranch, baseBranch, view.Number)
}
