package gitflow

import (
	"fmt"
	"os"
	"sync"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/tacogips/gitflow/config"
	"github.com/tacogips/gitflow/notify"
)

// Default timeouts for the orchestrated subprocess classes.
const (
	DefaultPushTimeout    = 2 * time.Minute
	DefaultInspectTimeout = 30 * time.Second
)

// Orchestrator owns the process registry, cancellation state, and operation
// phase for all git workflow actions. It replaces what would otherwise be
// module-level mutable state: construct one per process and pass it to every
// caller that needs to execute or coordinate git actions.
type Orchestrator struct {
	agent    *AgentCLI
	prompts  *PromptLoader
	notifier notify.Notifier // optional, best-effort

	gitPath string
	ghPath  string

	pushTimeout    time.Duration
	inspectTimeout time.Duration

	mu        sync.Mutex
	procs     map[string]*os.Process
	cancelled map[string]struct{}
	phase     Phase
}

// OrchestratorConfig configures an Orchestrator.
type OrchestratorConfig struct {
	Agent AgentConfig // Coding-agent CLI configuration

	GitPath string // Path to git binary (default: "git")
	GHPath  string // Path to gh binary (default: "gh")

	PushTimeout    time.Duration // Timeout for git push (default: 2m)
	InspectTimeout time.Duration // Timeout for read-only inspections (default: 30s)

	PromptDir string // Extra directory searched for prompt templates

	Notifier notify.Notifier // Optional sink for action outcome events
}

// NewOrchestrator creates an orchestrator.
// Returns ErrAgentNotFound if the agent CLI binary is not installed.
func NewOrchestrator(cfg OrchestratorConfig) (*Orchestrator, error) {
	agent, err := NewAgentCLI(cfg.Agent)
	if err != nil {
		return nil, err
	}

	gitPath := cfg.GitPath
	if gitPath == "" {
		gitPath = "git"
	}
	ghPath := cfg.GHPath
	if ghPath == "" {
		ghPath = "gh"
	}

	pushTimeout := cfg.PushTimeout
	if pushTimeout == 0 {
		pushTimeout = DefaultPushTimeout
	}
	inspectTimeout := cfg.InspectTimeout
	if inspectTimeout == 0 {
		inspectTimeout = DefaultInspectTimeout
	}

	prompts := NewPromptLoader()
	if cfg.PromptDir != "" {
		prompts.AddSearchDir(cfg.PromptDir)
	}

	return &Orchestrator{
		agent:          agent,
		prompts:        prompts,
		notifier:       cfg.Notifier,
		gitPath:        gitPath,
		ghPath:         ghPath,
		pushTimeout:    pushTimeout,
		inspectTimeout: inspectTimeout,
		procs:          make(map[string]*os.Process),
		cancelled:      make(map[string]struct{}),
		phase:          PhaseIdle,
	}, nil
}

// NewOrchestratorFromConfig builds an orchestrator from resolved
// configuration.
func NewOrchestratorFromConfig(cfg config.Config) (*Orchestrator, error) {
	return NewOrchestrator(OrchestratorConfig{
		Agent: AgentConfig{
			BinaryPath: cfg.AgentBinary,
			Model:      cfg.AgentModel,
			Timeout:    time.Duration(cfg.AgentTimeout),
		},
		GitPath:        cfg.GitBinary,
		GHPath:         cfg.GHBinary,
		PushTimeout:    time.Duration(cfg.PushTimeout),
		InspectTimeout: time.Duration(cfg.InspectTimeout),
		PromptDir:      cfg.PromptDir,
	})
}

// NewActionID generates a unique action identifier for correlating a
// long-running action with a later cancellation request.
func NewActionID() string {
	id, err := nanoid.New()
	if err != nil {
		// nanoid only fails when the OS entropy source does
		return fmt.Sprintf("action-%d", time.Now().UnixNano())
	}
	return id
}
