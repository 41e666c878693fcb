// Package workflow chains the gitflow executors into a flowgraph pipeline:
// commit, push, create-PR as sequential graph nodes sharing one state. Each
// node gates on the previous node's GitActionResult, matching the strictly
// sequential contract of the underlying executors.
package workflow

import (
	"time"

	"github.com/tacogips/gitflow"
)

// State flows through the ship pipeline, accumulating each action's result.
type State struct {
	// Inputs
	Dir        string `json:"dir"`                  // Project path every action runs in
	BaseBranch string `json:"baseBranch,omitempty"` // PR base (default "main")
	Context    string `json:"context,omitempty"`    // Optional caller guidance for prompts
	ActionID   string `json:"actionId,omitempty"`   // Cancellation correlation for all nodes

	// Per-node results
	Commit   gitflow.GitActionResult `json:"commit,omitempty"`
	Push     gitflow.GitActionResult `json:"push,omitempty"`
	CreatePR gitflow.GitActionResult `json:"createPr,omitempty"`

	StartedAt  time.Time `json:"startedAt,omitempty"`
	FinishedAt time.Time `json:"finishedAt,omitempty"`
}

// NewState creates pipeline state for a project directory. A fresh action
// identifier is generated so the whole run can be cancelled as one action.
func NewState(dir string) State {
	return State{
		Dir:        dir,
		BaseBranch: "main",
		ActionID:   gitflow.NewActionID(),
		StartedAt:  time.Now(),
	}
}
