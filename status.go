package gitflow

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// PRStatusResult is the aggregated branch and PR state for a repository,
// computed fresh on every call and never persisted.
type PRStatusResult struct {
	HasPR                 bool
	PR                    *PRStatusInfo // nil when no PR exists
	CanCreatePR           bool
	BaseBranch            string
	AvailableBaseBranches []string // default branch first, rest alphabetical
	Reason                string   // set only when CanCreatePR is false
}

// PRStatusInfo identifies the current branch's pull request.
type PRStatusInfo struct {
	URL    string
	Number int
	State  string
	Title  string
}

var originHeadRe = regexp.MustCompile(`refs/remotes/origin/(.+)$`)

// PRStatus runs four independent read-only inspections concurrently and
// merges them into one snapshot. Every inspection swallows its own failure;
// the aggregator itself never fails, collapsing to a conservative "no PR,
// cannot create" result instead.
func (o *Orchestrator) PRStatus(ctx context.Context, dir string) PRStatusResult {
	var prOut, branchesOut, currentOut, headRefOut *ProcessResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prOut = o.inspect(gctx, dir, o.ghPath, "pr", "view", "--json", "number,url,title,state")
		return nil
	})
	g.Go(func() error {
		branchesOut = o.inspect(gctx, dir, o.gitPath, "branch", "-r", "--list", "origin/*")
		return nil
	})
	g.Go(func() error {
		currentOut = o.inspect(gctx, dir, o.gitPath, "branch", "--show-current")
		return nil
	})
	g.Go(func() error {
		headRefOut = o.inspect(gctx, dir, o.gitPath, "symbolic-ref", "refs/remotes/origin/HEAD")
		return nil
	})
	// Inspections report nil on failure instead of an error; Wait is a join
	// of all four, not a first-failure race.
	_ = g.Wait()

	currentBranch := ""
	if currentOut != nil {
		currentBranch = strings.TrimSpace(currentOut.Stdout)
	}

	defaultBranch := "main"
	if headRefOut != nil {
		if m := originHeadRe.FindStringSubmatch(strings.TrimSpace(headRefOut.Stdout)); m != nil {
			defaultBranch = m[1]
		}
	}

	var pr *PRStatusInfo
	if prOut != nil {
		pr = parseStatusPR([]byte(prOut.Stdout))
	}

	result := PRStatusResult{
		HasPR:                 pr != nil,
		PR:                    pr,
		BaseBranch:            defaultBranch,
		AvailableBaseBranches: mergeBranchList(branchesOut, defaultBranch),
	}

	switch {
	case result.HasPR:
		result.Reason = fmt.Sprintf("a pull request already exists for this branch (#%d)", pr.Number)
	case currentBranch == "":
		result.Reason = "could not determine the current branch"
	case currentBranch == defaultBranch:
		result.Reason = fmt.Sprintf("currently on the default branch %q", defaultBranch)
	default:
		result.CanCreatePR = true
	}

	return result
}

// inspect runs a read-only command under the inspection timeout, returning
// nil for any failure including a non-zero exit.
func (o *Orchestrator) inspect(ctx context.Context, dir, name string, args ...string) *ProcessResult {
	res, err := o.runProcess(ctx, processSpec{
		name:    name,
		args:    args,
		dir:     dir,
		timeout: o.inspectTimeout,
	})
	if err != nil || res.ExitCode != 0 {
		return nil
	}
	return res
}

// parseStatusPR decodes the gh pr view JSON for the status snapshot. Any
// parse or shape failure is treated as "no PR" rather than propagated.
func parseStatusPR(data []byte) *PRStatusInfo {
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

	info := &PRStatusInfo{
		URL:    url,
		Number: int(number),
		Title:  title,
	}
	if state, ok := raw["state"].(string); ok {
		info.State = state
	}
	return info
}

// mergeBranchList parses `git branch -r --list origin/*` output into branch
// names: origin/ prefix stripped, the HEAD alias excluded, deduplicated, and
// ordered default branch first with the remainder alphabetical.
func mergeBranchList(res *ProcessResult, defaultBranch string) []string {
	if res == nil {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		name, found := strings.CutPrefix(fields[0], "origin/")
		if !found || name == "HEAD" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if names[i] == defaultBranch {
			return true
		}
		if names[j] == defaultBranch {
			return false
		}
		return names[i] < names[j]
	})
	return names
}
