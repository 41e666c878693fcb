// Package task maps git workflow action kinds to agent models.
//
// Each action kind (commit authoring, PR creation, PR update, placeholder
// recovery) has a fixed model tier: commit messages can use a fast model,
// while PR description work defaults to the standard tier.
package task

import (
	"github.com/randalmurphal/llmkit/model"
)

// Kind represents the kind of git workflow action the agent performs.
// This determines which model tier is appropriate.
type Kind string

const (
	// Commit authoring summarizes staged changes; a fast model suffices.
	Commit Kind = "commit"

	// PR description work reads diffs and writes structured prose.
	CreatePR Kind = "create_pr"
	UpdatePR Kind = "update_pr"

	// RecoverPR replaces placeholder PR content and must verify its own
	// work, so it runs on the default tier like the creation it repairs.
	RecoverPR Kind = "recover_pr"
)

// DefaultModelMap maps action kinds to default models.
var DefaultModelMap = map[Kind]model.ModelName{
	Commit:    model.ModelHaiku,
	CreatePR:  model.ModelSonnet,
	UpdatePR:  model.ModelSonnet,
	RecoverPR: model.ModelSonnet,
}

// TierForKind returns the appropriate tier for an action kind.
func TierForKind(k Kind) model.Tier {
	switch k {
	case Commit:
		return model.TierFast
	default:
		return model.TierDefault
	}
}

// NewSelector creates a model selector configured for git workflow actions.
func NewSelector(opts ...model.SelectorOption) *model.Selector {
	allOpts := append([]model.SelectorOption{
		model.WithTierFunc(func(task any) model.Tier {
			if k, ok := task.(Kind); ok {
				return TierForKind(k)
			}
			return model.TierDefault
		}),
	}, opts...)

	return model.NewSelector(allOpts...)
}

// SelectModel selects the model for an action kind.
func SelectModel(k Kind) model.ModelName {
	if m, ok := DefaultModelMap[k]; ok {
		return m
	}
	switch TierForKind(k) {
	case model.TierFast:
		return model.ModelHaiku
	default:
		return model.ModelSonnet
	}
}
