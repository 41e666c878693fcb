// Package gitflow automates git and GitHub workflow steps on behalf of a
// user by driving the git, gh, and coding-agent command-line tools as child
// processes.
//
// The core type is Orchestrator, which owns the process registry, the
// cancellation state, and the current operation phase. All mutating actions
// go through its four executors:
//
//	orch, _ := gitflow.NewOrchestrator(gitflow.OrchestratorConfig{})
//	res := orch.ExecuteCommit(ctx, "/path/to/repo", "fix the parser", "action-1")
//	if !res.Success {
//	    log.Println(res.Error)
//	}
//
// Long-running actions are correlated to cancellation requests through a
// caller-supplied action identifier:
//
//	go orch.ExecuteCreatePR(ctx, repo, "main", "", "pr-42")
//	// later, from another goroutine:
//	orch.CancelGitAction("pr-42")
//
// Read-only inspection is available through PRStatus, which never fails:
//
//	status := orch.PRStatus(ctx, repo)
//
// Subpackages:
//
//   - auth: GitHub token resolution (env vars, gh CLI, GitHub App)
//   - config: hierarchical configuration (env > local > global > defaults)
//   - ghapi: typed GitHub REST wrapper for PR, branch, and label operations
//   - notify: best-effort action event sinks (log, webhook, fan-out)
//   - task: action-kind based model selection for the agent CLI
//   - workflow: flowgraph pipeline chaining commit, push, and create-PR
//   - testutil: git repository and stub binary helpers for tests
package gitflow
