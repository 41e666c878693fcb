package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.AgentBinary != "claude" {
		t.Errorf("AgentBinary = %q, want claude", cfg.AgentBinary)
	}
	if cfg.GitBinary != "git" {
		t.Errorf("GitBinary = %q, want git", cfg.GitBinary)
	}
	if cfg.GHBinary != "gh" {
		t.Errorf("GHBinary = %q, want gh", cfg.GHBinary)
	}
	if cfg.BaseBranch != "main" {
		t.Errorf("BaseBranch = %q, want main", cfg.BaseBranch)
	}
}

func TestDuration_YAML(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte("agent_timeout: 5m\npush_timeout: 90s\n"), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if time.Duration(cfg.AgentTimeout) != 5*time.Minute {
		t.Errorf("AgentTimeout = %v, want 5m", time.Duration(cfg.AgentTimeout))
	}
	if time.Duration(cfg.PushTimeout) != 90*time.Second {
		t.Errorf("PushTimeout = %v, want 90s", time.Duration(cfg.PushTimeout))
	}
}

func TestDuration_YAMLInvalid(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte("agent_timeout: banana\n"), &cfg); err == nil {
		t.Error("unmarshal accepted an invalid duration")
	}
}

func TestLoad_LocalFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	local := "agent_model: test-model\nbase_branch: develop\ninspect_timeout: 45s\n"
	if err := os.WriteFile(filepath.Join(dir, LocalConfigName), []byte(local), 0o644); err != nil {
		t.Fatalf("write local config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AgentModel != "test-model" {
		t.Errorf("AgentModel = %q, want test-model", cfg.AgentModel)
	}
	if cfg.BaseBranch != "develop" {
		t.Errorf("BaseBranch = %q, want develop", cfg.BaseBranch)
	}
	if time.Duration(cfg.InspectTimeout) != 45*time.Second {
		t.Errorf("InspectTimeout = %v, want 45s", time.Duration(cfg.InspectTimeout))
	}
	// Unset fields keep their defaults.
	if cfg.GitBinary != "git" {
		t.Errorf("GitBinary = %q, want default git", cfg.GitBinary)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LocalConfigName), []byte("base_branch: develop\n"), 0o644); err != nil {
		t.Fatalf("write local config: %v", err)
	}

	t.Setenv("GITFLOW_BASE_BRANCH", "release")
	t.Setenv("GITFLOW_PUSH_TIMEOUT", "3m")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.BaseBranch != "release" {
		t.Errorf("BaseBranch = %q, want env override release", cfg.BaseBranch)
	}
	if time.Duration(cfg.PushTimeout) != 3*time.Minute {
		t.Errorf("PushTimeout = %v, want 3m", time.Duration(cfg.PushTimeout))
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LocalConfigName), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write local config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load accepted a malformed config file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	cfg := Default()
	cfg.AgentModel = "pinned-model"
	cfg.AgentTimeout = Duration(7 * time.Minute)

	if err := Save(cfg, dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.AgentModel != "pinned-model" {
		t.Errorf("AgentModel = %q, want pinned-model", loaded.AgentModel)
	}
	if time.Duration(loaded.AgentTimeout) != 7*time.Minute {
		t.Errorf("AgentTimeout = %v, want 7m", time.Duration(loaded.AgentTimeout))
	}
}
