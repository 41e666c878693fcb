package workflow

import (
	"context"

	"github.com/tacogips/gitflow"
)

// orchestratorKey is a private type for context keys to avoid collisions.
type orchestratorKey struct{}

// WithOrchestrator injects the orchestrator into a context for use by
// pipeline nodes.
func WithOrchestrator(ctx context.Context, orch *gitflow.Orchestrator) context.Context {
	return context.WithValue(ctx, orchestratorKey{}, orch)
}

// OrchestratorFromContext extracts the orchestrator from a context.
func OrchestratorFromContext(ctx context.Context) *gitflow.Orchestrator {
	if orch, ok := ctx.Value(orchestratorKey{}).(*gitflow.Orchestrator); ok {
		return orch
	}
	return nil
}
