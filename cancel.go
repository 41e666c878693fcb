package gitflow

import (
	"log/slog"
	"os"
)

// CancelGitAction requests cancellation of the action identified by actionID.
//
// The cancellation mark is recorded unconditionally, so a request that
// arrives before the action's process is registered is not lost: the runner's
// pre-flight check will honor it at the next opportunity. If a live process
// is registered it is killed best-effort; a failed kill is ignored because
// cancellation must never itself fail.
//
// Returns whether a live process was found. Calling twice for the same
// identifier is safe; the second call is a no-op returning false once the
// process has exited.
func (o *Orchestrator) CancelGitAction(actionID string) bool {
	o.mu.Lock()
	o.cancelled[actionID] = struct{}{}
	proc := o.procs[actionID]
	o.mu.Unlock()

	if proc == nil {
		return false
	}

	// Kill is advisory. The process may have exited between the lookup and
	// the signal, and the runner relabels the outcome either way.
	if err := proc.Kill(); err != nil {
		slog.Debug("kill after cancel request failed", "action", actionID, "error", err)
	}
	return true
}

func (o *Orchestrator) registerProcess(actionID string, proc *os.Process) {
	o.mu.Lock()
	o.procs[actionID] = proc
	o.mu.Unlock()
}

func (o *Orchestrator) unregisterProcess(actionID string) {
	o.mu.Lock()
	delete(o.procs, actionID)
	o.mu.Unlock()
}

// isCancelled reports whether a cancellation mark exists for actionID.
// The mark persists until the owning executor consumes it via clearCancelled,
// so every check point after the request observes it.
func (o *Orchestrator) isCancelled(actionID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.cancelled[actionID]
	return ok
}

func (o *Orchestrator) clearCancelled(actionID string) {
	o.mu.Lock()
	delete(o.cancelled, actionID)
	o.mu.Unlock()
}
