package gitflow

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
)

// embeddedPrompts holds the default prompt templates compiled into the
// binary.
//
//go:embed prompts/*.txt
var embeddedPrompts embed.FS

// Prompt template names. Update-PR and recovery prompts are built inline by
// their executors because they depend on the fetched PR snapshot.
const (
	PromptCommit   = "commit"
	PromptCreatePR = "create-pr"
)

// PromptLoader loads and renders prompt templates. Caller-provided search
// directories take precedence over the embedded defaults, so a project can
// override the prompts without rebuilding.
type PromptLoader struct {
	mu    sync.Mutex
	dirs  []string
	cache map[string]*template.Template
}

// NewPromptLoader creates a loader serving the embedded templates.
func NewPromptLoader() *PromptLoader {
	return &PromptLoader{
		cache: make(map[string]*template.Template),
	}
}

// AddSearchDir prepends a directory to the template search path.
func (l *PromptLoader) AddSearchDir(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dirs = append([]string{dir}, l.dirs...)
}

// Build renders the named prompt with the given variables.
func (l *PromptLoader) Build(name string, vars map[string]any) (string, error) {
	tmpl, err := l.getTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Exists checks if a prompt template is available.
func (l *PromptLoader) Exists(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.loadRaw(name)
	return err == nil
}

// getTemplate serves the parsed template from the cache, parsing it on first
// use. A single loader is shared by every executor, so cache access is
// serialized.
func (l *PromptLoader) getTemplate(name string) (*template.Template, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if tmpl, ok := l.cache[name]; ok {
		return tmpl, nil
	}

	content, err := l.loadRaw(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template %s: %w", name, err)
	}

	l.cache[name] = tmpl
	return tmpl, nil
}

func (l *PromptLoader) loadRaw(name string) (string, error) {
	filename := name + ".txt"

	for _, dir := range l.dirs {
		path := filepath.Join(dir, filename)
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), nil
		}
	}

	data, err := embeddedPrompts.ReadFile("prompts/" + filename)
	if err != nil {
		return "", fmt.Errorf("prompt not found: %s", name)
	}
	return string(data), nil
}
