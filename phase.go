package gitflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/tacogips/gitflow/notify"
)

// Phase identifies which mutating git workflow is currently in flight.
//
// Phase is advisory state for other subsystems (e.g. a branch switcher) that
// must avoid racing git-mutating work. The orchestrator does not itself
// reject concurrent executor calls.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseCommitting Phase = "committing"
	PhasePushing    Phase = "pushing"
	PhaseCreatingPR Phase = "creating-pr"
)

// OperationPhase returns the currently active mutating phase.
func (o *Orchestrator) OperationPhase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// IsGitOperationRunning reports whether any mutating git action is in flight.
func (o *Orchestrator) IsGitOperationRunning() bool {
	return o.OperationPhase() != PhaseIdle
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	o.phase = p
	o.mu.Unlock()
}

// begin records the phase for an executor call and returns the cleanup that
// must run on every exit path. The cleanup restores the idle phase, consumes
// any cancellation mark left for the action, and announces the outcome.
func (o *Orchestrator) begin(ctx context.Context, p Phase, dir, actionID string) func(GitActionResult) {
	o.setPhase(p)
	o.notifyEvent(ctx, notify.Event{
		Type:     notify.EventActionStarted,
		ActionID: actionID,
		Phase:    string(p),
		Dir:      dir,
		Message:  string(p) + " started",
		Severity: notify.SeverityInfo,
	})

	return func(result GitActionResult) {
		o.setPhase(PhaseIdle)
		if actionID != "" {
			o.clearCancelled(actionID)
		}
		o.notifyEvent(ctx, resultEvent(p, dir, actionID, result))
	}
}

func resultEvent(p Phase, dir, actionID string, result GitActionResult) notify.Event {
	event := notify.Event{
		ActionID: actionID,
		Phase:    string(p),
		Dir:      dir,
	}
	switch {
	case result.Success:
		event.Type = notify.EventActionCompleted
		event.Severity = notify.SeverityInfo
		event.Message = string(p) + " completed"
	case result.Error == cancelledMessage:
		event.Type = notify.EventActionCancelled
		event.Severity = notify.SeverityWarning
		event.Message = string(p) + " cancelled"
	default:
		event.Type = notify.EventActionFailed
		event.Severity = notify.SeverityError
		event.Message = result.Error
	}
	return event
}

// notifyEvent delivers an event best-effort; a failed or missing notifier
// never affects the action outcome.
func (o *Orchestrator) notifyEvent(ctx context.Context, event notify.Event) {
	if o.notifier == nil {
		return
	}
	event.Timestamp = time.Now()
	if err := o.notifier.Notify(ctx, event); err != nil {
		slog.Debug("action notification failed", "error", err, "type", event.Type)
	}
}
