package gitflow

import (
	"context"
	"log/slog"

	"github.com/tacogips/gitflow/task"
)

// ExecuteCommit asks the agent to stage and commit the current changes in
// dir. customContext is optional free-form guidance appended to the prompt;
// actionID optionally correlates the call to a later cancellation request.
//
// There is no verification loop for commits: a commit has no externally
// checkable quality gate the way a PR description does.
func (o *Orchestrator) ExecuteCommit(ctx context.Context, dir, customContext, actionID string) (result GitActionResult) {
	done := o.begin(ctx, PhaseCommitting, dir, actionID)
	defer func() { done(result) }()

	prompt, err := o.prompts.Build(PromptCommit, map[string]any{
		"Context": customContext,
	})
	if err != nil {
		return GitActionResult{Error: "build commit prompt: " + err.Error()}
	}

	slog.Debug("executing commit action", "dir", dir, "action", actionID)
	return o.invokeAgent(ctx, dir, prompt, task.Commit, actionID)
}
