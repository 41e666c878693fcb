package gitflow

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/tacogips/gitflow/task"
)

// DefaultAgentTimeout bounds one agent CLI invocation.
const DefaultAgentTimeout = 5 * time.Minute

// DefaultAllowedTools is the fixed tool allow-list granted to the agent for
// git workflow actions.
var DefaultAllowedTools = []string{
	"Bash(git:*)",
	"Bash(gh:*)",
	"Read",
	"Grep",
	"Glob",
}

// AgentCLI holds the invocation configuration for the coding-agent binary.
// The agent always runs non-interactively: permission prompts bypassed,
// model pinned, tools restricted, plain-text output, no session persistence.
type AgentCLI struct {
	binaryPath   string
	model        string // Override; empty selects per action kind
	timeout      time.Duration
	allowedTools []string
}

// AgentConfig configures the agent CLI wrapper.
type AgentConfig struct {
	BinaryPath   string        // Path to the agent binary (default: "claude")
	Model        string        // Model override (empty = per-kind selection)
	Timeout      time.Duration // Timeout per invocation (default: 5m)
	AllowedTools []string      // Tool allow-list (default: DefaultAllowedTools)
}

// NewAgentCLI creates the agent wrapper.
// Returns ErrAgentNotFound if the binary is not installed.
func NewAgentCLI(cfg AgentConfig) (*AgentCLI, error) {
	binaryPath := cfg.BinaryPath
	if binaryPath == "" {
		binaryPath = "claude"
	}

	if _, err := exec.LookPath(binaryPath); err != nil {
		return nil, ErrAgentNotFound
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultAgentTimeout
	}

	allowedTools := cfg.AllowedTools
	if allowedTools == nil {
		allowedTools = DefaultAllowedTools
	}

	return &AgentCLI{
		binaryPath:   binaryPath,
		model:        cfg.Model,
		timeout:      timeout,
		allowedTools: allowedTools,
	}, nil
}

// buildArgs constructs the fixed non-interactive argument list.
func (a *AgentCLI) buildArgs(kind task.Kind, prompt string) []string {
	args := []string{"--print", "--output-format", "text", "--dangerously-skip-permissions"}

	args = append(args, "--model", a.modelFor(kind))
	for _, tool := range a.allowedTools {
		args = append(args, "--allowedTools", tool)
	}

	args = append(args, "-p", prompt)
	return args
}

func (a *AgentCLI) modelFor(kind task.Kind) string {
	if a.model != "" {
		return a.model
	}
	return string(task.SelectModel(kind))
}

// BinaryPath returns the path to the agent binary.
func (a *AgentCLI) BinaryPath() string {
	return a.binaryPath
}

// invokeAgent runs the agent CLI in dir with the given prompt and maps the
// raw process outcome to a GitActionResult.
//
// Cancellation is checked before and after the run: a kill signal racing
// natural completion can leave either outcome, and a recorded cancellation
// always takes precedence over the literal process result or error text.
func (o *Orchestrator) invokeAgent(ctx context.Context, dir, prompt string, kind task.Kind, actionID string) GitActionResult {
	res, err := o.runProcess(ctx, processSpec{
		name:     o.agent.binaryPath,
		args:     o.agent.buildArgs(kind, prompt),
		dir:      dir,
		timeout:  o.agent.timeout,
		actionID: actionID,
	})
	if err != nil {
		if actionID != "" && o.isCancelled(actionID) {
			return cancelledResult()
		}
		return GitActionResult{Error: err.Error()}
	}

	if actionID != "" && o.isCancelled(actionID) {
		return cancelledResult()
	}

	output := strings.TrimSpace(res.Stdout)
	if res.ExitCode != 0 {
		errMsg := strings.TrimSpace(res.Stderr)
		if errMsg == "" {
			errMsg = fmt.Sprintf("exited with code %d", res.ExitCode)
		}
		return GitActionResult{Output: output, Error: errMsg}
	}

	return GitActionResult{Success: true, Output: output}
}
