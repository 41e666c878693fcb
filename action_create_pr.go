package gitflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tacogips/gitflow/notify"
	"github.com/tacogips/gitflow/task"
)

// ExecuteCreatePR asks the agent to create a pull request for the current
// branch against baseBranch, then verifies the created PR does not carry
// placeholder content. When it does, a stricter recovery prompt runs once
// and the result is re-verified.
//
// The workflow is strictly sequential; each step's outcome gates the next:
// run, cancel-check, fetch, decide, maybe-recover, re-fetch.
func (o *Orchestrator) ExecuteCreatePR(ctx context.Context, dir, baseBranch, customContext, actionID string) (result GitActionResult) {
	done := o.begin(ctx, PhaseCreatingPR, dir, actionID)
	defer func() { done(result) }()

	if baseBranch == "" {
		baseBranch = "main"
	}

	prompt, err := o.prompts.Build(PromptCreatePR, map[string]any{
		"BaseBranch": baseBranch,
		"Context":    customContext,
	})
	if err != nil {
		return GitActionResult{Error: "build create-pr prompt: " + err.Error()}
	}

	first := o.invokeAgent(ctx, dir, prompt, task.CreatePR, actionID)
	if !first.Success {
		// A creation that never produced output gets no recovery attempt.
		return first
	}

	if actionID != "" && o.isCancelled(actionID) {
		return cancelledResult()
	}

	view := o.fetchPRView(ctx, dir)
	if view == nil || !isPlaceholderPR(view) {
		if view != nil {
			o.notifyEvent(ctx, prCreatedEvent(dir, actionID, view))
		}
		return first
	}

	slog.Warn("placeholder PR content detected, attempting recovery",
		"pr", view.Number, "dir", dir)

	recovery := o.invokeAgent(ctx, dir, recoveryPrompt(view, baseBranch), task.RecoverPR, actionID)
	if !recovery.Success {
		return GitActionResult{
			Output: joinOutputs(first.Output, recovery.Output),
			Error:  "placeholder recovery failed: " + recovery.Error,
		}
	}

	verified := o.fetchPRView(ctx, dir)
	if isPlaceholderPR(verified) {
		return GitActionResult{
			Output: joinOutputs(first.Output, recovery.Output),
			Error:  "placeholder content persisted after recovery",
		}
	}

	if verified != nil {
		o.notifyEvent(ctx, prCreatedEvent(dir, actionID, verified))
	}
	return GitActionResult{
		Success: true,
		Output:  joinOutputs(first.Output, "placeholder PR content was detected and auto-fixed"),
	}
}

// prCreatedEvent announces a freshly created PR, carrying its URL so
// notifiers can link straight to it.
func prCreatedEvent(dir, actionID string, view *PRView) notify.Event {
	return notify.Event{
		Type:     notify.EventPRCreated,
		ActionID: actionID,
		Phase:    string(PhaseCreatingPR),
		Dir:      dir,
		Message:  fmt.Sprintf("created PR #%d: %s", view.Number, view.URL),
		Severity: notify.SeverityInfo,
	}
}

// recoveryPrompt builds the stricter follow-up instruction issued when a
// created PR still carries placeholder content. Unlike the creation prompt
// it names the forbidden strings, the required sections, and the
// verification steps the agent must perform itself.
func recoveryPrompt(view *PRView, baseBranch string) string {
	return fmt.Sprintf(`The pull request #%d at %s was created with placeholder content
instead of a real description. Fix it now.

1. Run 'git log %s..HEAD' and 'git diff %s...HEAD' to read the actual changes.
2. Write a real title: one line summarizing the change. It must NOT be
   "Pull request title" or any variation of it.
3. Write a real body with these sections:
   ## Summary - what changed and why
   ## Changes - bullet list of the concrete modifications
   ## Test Plan - how the change was or should be verified
   The body must NOT be "Pull request body" or any variation of it.
4. Apply both with 'gh pr edit %d --title ... --body ...'.
5. Verify: run 'gh pr view --json title,body' and confirm neither field is
   placeholder text before you finish.`,
		view.Number, view.URL, baseBranch, baseBranch, view.Number)
}
