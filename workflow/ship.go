package workflow

import (
	"context"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"

	"github.com/tacogips/gitflow"
)

// NewShipGraph builds the commit -> push -> create-PR pipeline.
func NewShipGraph() *flowgraph.Graph[State] {
	return flowgraph.NewGraph[State]().
		AddNode("commit", CommitNode).
		AddNode("push", PushNode).
		AddNode("create-pr", CreatePRNode).
		AddEdge("commit", "push").
		AddEdge("push", "create-pr").
		AddEdge("create-pr", flowgraph.END).
		SetEntry("commit")
}

// Ship runs the full pipeline for the given state. The returned state
// carries every node's result, including the partial results of a failed
// run.
func Ship(ctx context.Context, orch *gitflow.Orchestrator, state State) (State, error) {
	compiled, err := NewShipGraph().Compile()
	if err != nil {
		return state, err
	}
	return compiled.Run(flowgraph.NewContext(WithOrchestrator(ctx, orch)), state)
}
