package gitflow

import (
	"context"
	"encoding/json"
)

// PRView is a minimal read-only snapshot of the pull request associated with
// the current branch.
type PRView struct {
	Number int
	URL    string
	Title  string
	Body   *string // nil when gh reported no body, distinct from empty string
}

// fetchPRView runs `gh pr view` in dir and parses its JSON output. This is a
// side inspection, not a cancellable user action, so it is never bound to an
// action identifier.
//
// Returns nil on any failure: no PR for the branch, a non-zero gh exit, or
// malformed output. It never fails loudly.
func (o *Orchestrator) fetchPRView(ctx context.Context, dir string) *PRView {
	res, err := o.runProcess(ctx, processSpec{
		name:    o.ghPath,
		args:    []string{"pr", "view", "--json", "number,url,title,body"},
		dir:     dir,
		timeout: o.inspectTimeout,
	})
	if err != nil || res.ExitCode != 0 {
		return nil
	}
	return parsePRView([]byte(res.Stdout))
}

// parsePRView decodes the gh JSON defensively: gh output can be partial or
// garbled, and any shape mismatch means "no PR" rather than an error.
func parsePRView(data []byte) *PRView {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	number, ok := raw["number"].(float64)
	if !ok {
		return nil
	}
	url, ok := raw["url"].(string)
	if !ok {
		return nil
	}
	title, ok := raw["title"].(string)
	if !ok {
		return nil
	}

	view := &PRView{
		Number: int(number),
		URL:    url,
		Title:  title,
	}
	if body, ok := raw["body"].(string); ok {
		view.Body = &body
	}
	return view
}
