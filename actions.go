package gitflow

import "strings"

// GitActionResult is the uniform outcome of one executor invocation. Errors
// never cross the executor boundary as Go errors; callers branch on Success
// and read the best-effort Error text.
type GitActionResult struct {
	Success bool
	Output  string // Whatever output was captured, even on failure
	Error   string // Human-readable explanation, empty on success
}

const cancelledMessage = "action cancelled by user"

func cancelledResult() GitActionResult {
	return GitActionResult{Error: cancelledMessage}
}

// joinOutputs concatenates non-empty outputs from sequential attempts.
func joinOutputs(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

// failureFrom maps a runner error to a GitActionResult, letting a recorded
// cancellation for the action take precedence over the literal error text.
func (o *Orchestrator) failureFrom(actionID string, err error) GitActionResult {
	if actionID != "" && o.isCancelled(actionID) {
		return cancelledResult()
	}
	return GitActionResult{Error: err.Error()}
}
