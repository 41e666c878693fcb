package gitflow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/tacogips/gitflow/notify"
	"github.com/tacogips/gitflow/testutil"
)

// recordingNotifier captures every event for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recordingNotifier) Notify(_ context.Context, event notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingNotifier) all() []notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Event(nil), r.events...)
}

func TestPhase_IdleAfterExecutor(t *testing.T) {
	orch := newTestOrchestrator(t, OrchestratorConfig{})
	dir := testutil.SetupTestRepo(t)

	result := orch.ExecuteCommit(context.Background(), dir, "", NewActionID())
	if !result.Success {
		t.Fatalf("ExecuteCommit failed: %s", result.Error)
	}

	if got := orch.OperationPhase(); got != PhaseIdle {
		t.Errorf("OperationPhase = %q after executor returned, want %q", got, PhaseIdle)
	}
}

func TestPhase_IdleAfterFailedExecutor(t *testing.T) {
	orch := newTestOrchestrator(t, OrchestratorConfig{
		Agent: AgentConfig{
			BinaryPath: testutil.WriteStub(t, "agent", "echo broken >&2; exit 1"),
		},
	})
	dir := testutil.SetupTestRepo(t)

	result := orch.ExecuteCommit(context.Background(), dir, "", NewActionID())
	if result.Success {
		t.Fatal("ExecuteCommit succeeded with a failing agent")
	}

	if got := orch.OperationPhase(); got != PhaseIdle {
		t.Errorf("OperationPhase = %q after failure, want %q", got, PhaseIdle)
	}
}

func TestPhase_ReportedWhileRunning(t *testing.T) {
	orch := newTestOrchestrator(t, OrchestratorConfig{
		Agent: AgentConfig{
			BinaryPath: testutil.WriteStub(t, "agent", "sleep 2"),
		},
	})
	dir := testutil.SetupTestRepo(t)

	done := make(chan GitActionResult, 1)
	go func() {
		done <- orch.ExecuteCommit(context.Background(), dir, "", NewActionID())
	}()

	// Wait for the executor to enter the committing phase.
	deadline := time.Now().Add(5 * time.Second)
	for orch.OperationPhase() != PhaseCommitting {
		if time.Now().After(deadline) {
			t.Fatal("never observed the committing phase")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !orch.IsGitOperationRunning() {
		t.Error("IsGitOperationRunning = false during an executor call")
	}

	<-done
	if orch.IsGitOperationRunning() {
		t.Error("IsGitOperationRunning = true after the executor finished")
	}
}

func TestExecutor_ClearsCancelMark(t *testing.T) {
	orch := newTestOrchestrator(t, OrchestratorConfig{})
	dir := testutil.SetupTestRepo(t)

	actionID := NewActionID()
	orch.CancelGitAction(actionID)

	result := orch.ExecuteCommit(context.Background(), dir, "", actionID)
	if result.Error != cancelledMessage {
		t.Errorf("Error = %q, want %q", result.Error, cancelledMessage)
	}

	// The executor consumed the mark on exit; the identifier is reusable.
	if orch.isCancelled(actionID) {
		t.Error("cancellation mark not cleared by executor")
	}
}

func TestExecutor_EmitsLifecycleEvents(t *testing.T) {
	rec := &recordingNotifier{}
	orch := newTestOrchestrator(t, OrchestratorConfig{Notifier: rec})
	dir := testutil.SetupTestRepo(t)

	actionID := NewActionID()
	result := orch.ExecuteCommit(context.Background(), dir, "", actionID)
	if !result.Success {
		t.Fatalf("ExecuteCommit failed: %s", result.Error)
	}

	events := rec.all()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	if events[0].Type != notify.EventActionStarted {
		t.Errorf("events[0].Type = %q, want %q", events[0].Type, notify.EventActionStarted)
	}
	if events[1].Type != notify.EventActionCompleted {
		t.Errorf("events[1].Type = %q, want %q", events[1].Type, notify.EventActionCompleted)
	}
	for i, event := range events {
		if event.ActionID != actionID {
			t.Errorf("events[%d].ActionID = %q, want %q", i, event.ActionID, actionID)
		}
		if event.Phase != string(PhaseCommitting) {
			t.Errorf("events[%d].Phase = %q, want %q", i, event.Phase, PhaseCommitting)
		}
		if event.Dir != dir {
			t.Errorf("events[%d].Dir = %q, want %q", i, event.Dir, dir)
		}
	}
}

func TestResultEvent_Mapping(t *testing.T) {
	tests := []struct {
		name         string
		result       GitActionResult
		wantType     notify.EventType
		wantSeverity string
	}{
		{
			name:         "success",
			result:       GitActionResult{Success: true},
			wantType:     notify.EventActionCompleted,
			wantSeverity: notify.SeverityInfo,
		},
		{
			name:         "cancelled",
			result:       cancelledResult(),
			wantType:     notify.EventActionCancelled,
			wantSeverity: notify.SeverityWarning,
		},
		{
			name:         "failed",
			result:       GitActionResult{Error: "push rejected"},
			wantType:     notify.EventActionFailed,
			wantSeverity: notify.SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := resultEvent(PhasePushing, "/repo", "a1", tt.result)
			if event.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", event.Type, tt.wantType)
			}
			if event.Severity != tt.wantSeverity {
				t.Errorf("Severity = %q, want %q", event.Severity, tt.wantSeverity)
			}
		})
	}
}
