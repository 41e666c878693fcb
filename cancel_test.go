package gitflow

import (
	"testing"
)

func TestCancelGitAction_NoProcess(t *testing.T) {
	orch := newTestOrchestrator(t, OrchestratorConfig{})

	// No process registered under this identifier: the call reports no kill
	// but the mark must be recorded for the pre-flight check.
	if orch.CancelGitAction("unknown-action") {
		t.Error("CancelGitAction = true with no registered process")
	}
	if !orch.isCancelled("unknown-action") {
		t.Error("cancellation mark was not recorded")
	}
}

func TestCancelGitAction_Idempotent(t *testing.T) {
	orch := newTestOrchestrator(t, OrchestratorConfig{})

	orch.CancelGitAction("some-action")
	if orch.CancelGitAction("some-action") {
		t.Error("second CancelGitAction = true, want false")
	}
	if !orch.isCancelled("some-action") {
		t.Error("mark lost after repeated cancellation")
	}
}

func TestCancelMark_PersistsUntilCleared(t *testing.T) {
	orch := newTestOrchestrator(t, OrchestratorConfig{})

	orch.CancelGitAction("a1")

	// Checks do not consume the mark.
	for i := 0; i < 3; i++ {
		if !orch.isCancelled("a1") {
			t.Fatalf("mark gone after %d checks", i)
		}
	}

	orch.clearCancelled("a1")
	if orch.isCancelled("a1") {
		t.Error("mark present after clearCancelled")
	}
}

func TestCancelMark_IndependentPerAction(t *testing.T) {
	orch := newTestOrchestrator(t, OrchestratorConfig{})

	orch.CancelGitAction("a1")
	if orch.isCancelled("a2") {
		t.Error("cancellation of a1 leaked to a2")
	}
}
