package workflow

import (
	"fmt"
	"time"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"
)

// CommitNode asks the agent to commit the current changes.
//
// Updates: state.Commit
func CommitNode(ctx flowgraph.Context, state State) (State, error) {
	orch := OrchestratorFromContext(ctx)
	if orch == nil {
		return state, fmt.Errorf("orchestrator not found in context")
	}

	state.Commit = orch.ExecuteCommit(ctx, state.Dir, state.Context, state.ActionID)
	if !state.Commit.Success {
		return state, fmt.Errorf("commit: %s", state.Commit.Error)
	}
	return state, nil
}

// PushNode pushes the current branch, setting upstream when needed.
//
// Prerequisites: CommitNode succeeded
// Updates: state.Push
func PushNode(ctx flowgraph.Context, state State) (State, error) {
	orch := OrchestratorFromContext(ctx)
	if orch == nil {
		return state, fmt.Errorf("orchestrator not found in context")
	}

	state.Push = orch.ExecutePush(ctx, state.Dir, state.ActionID)
	if !state.Push.Success {
		return state, fmt.Errorf("push: %s", state.Push.Error)
	}
	return state, nil
}

// CreatePRNode creates and verifies the pull request.
//
// Prerequisites: PushNode succeeded
// Updates: state.CreatePR, state.FinishedAt
func CreatePRNode(ctx flowgraph.Context, state State) (State, error) {
	orch := OrchestratorFromContext(ctx)
	if orch == nil {
		return state, fmt.Errorf("orchestrator not found in context")
	}

	state.CreatePR = orch.ExecuteCreatePR(ctx, state.Dir, state.BaseBranch, state.Context, state.ActionID)
	state.FinishedAt = time.Now()
	if !state.CreatePR.Success {
		return state, fmt.Errorf("create PR: %s", state.CreatePR.Error)
	}
	return state, nil
}
