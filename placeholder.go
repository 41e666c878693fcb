package gitflow

import (
	"strings"

	"golang.org/x/text/cases"
)

// Canonical placeholder strings in normalized form. These are the literal
// unfilled template strings the agent emits when it creates a PR without
// writing a real description.
const (
	placeholderTitle = "pull request title"
	placeholderBody  = "pull request body"
)

// isPlaceholderPR reports whether the PR snapshot still carries placeholder
// content in its title or body. Comparison is whitespace- and
// case-insensitive; a nil view (no PR) is not a placeholder.
func isPlaceholderPR(view *PRView) bool {
	if view == nil {
		return false
	}
	if normalizeForMatch(view.Title) == placeholderTitle {
		return true
	}
	if view.Body != nil && normalizeForMatch(*view.Body) == placeholderBody {
		return true
	}
	return false
}

func normalizeForMatch(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
