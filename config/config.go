// Package config loads gitflow configuration hierarchically: environment
// variables override the local .gitflow.yaml at the project root, which
// overrides the global ~/.config/gitflow/config.yaml, which overrides the
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for the orchestration layer.
type Config struct {
	AgentBinary    string   `yaml:"agent_binary"`    // Coding-agent CLI (default: "claude")
	AgentModel     string   `yaml:"agent_model"`     // Model override (default: per-action selection)
	GitBinary      string   `yaml:"git_binary"`      // git binary (default: "git")
	GHBinary       string   `yaml:"gh_binary"`       // gh binary (default: "gh")
	BaseBranch     string   `yaml:"base_branch"`     // Default PR base branch (default: "main")
	PromptDir      string   `yaml:"prompt_dir"`      // Extra prompt template directory
	AgentTimeout   Duration `yaml:"agent_timeout"`   // Per agent invocation (default: 5m)
	PushTimeout    Duration `yaml:"push_timeout"`    // Per push (default: 2m)
	InspectTimeout Duration `yaml:"inspect_timeout"` // Per read-only inspection (default: 30s)
}

// Duration is a time.Duration that unmarshals from yaml strings like "5m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		AgentBinary: "claude",
		GitBinary:   "git",
		GHBinary:    "gh",
		BaseBranch:  "main",
	}
}

// LocalConfigName is the per-project configuration filename.
const LocalConfigName = ".gitflow.yaml"

// Load resolves configuration for the project at projectDir.
func Load(projectDir string) (Config, error) {
	cfg := Default()

	if global, err := globalConfigPath(); err == nil {
		if err := mergeFile(&cfg, global); err != nil {
			return cfg, err
		}
	}

	if projectDir != "" {
		if err := mergeFile(&cfg, filepath.Join(projectDir, LocalConfigName)); err != nil {
			return cfg, err
		}
	}

	mergeEnv(&cfg)
	return cfg, nil
}

func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitflow", "config.yaml"), nil
}

// mergeFile overlays the yaml file onto cfg. A missing file is not an
// error; a malformed one is.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// mergeEnv overlays GITFLOW_* environment variables.
func mergeEnv(cfg *Config) {
	setString := func(env string, dst *string) {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	setDuration := func(env string, dst *Duration) {
		if v := os.Getenv(env); v != "" {
			if parsed, err := time.ParseDuration(v); err == nil {
				*dst = Duration(parsed)
			}
		}
	}

	setString("GITFLOW_AGENT_BINARY", &cfg.AgentBinary)
	setString("GITFLOW_AGENT_MODEL", &cfg.AgentModel)
	setString("GITFLOW_GIT_BINARY", &cfg.GitBinary)
	setString("GITFLOW_GH_BINARY", &cfg.GHBinary)
	setString("GITFLOW_BASE_BRANCH", &cfg.BaseBranch)
	setString("GITFLOW_PROMPT_DIR", &cfg.PromptDir)
	setDuration("GITFLOW_AGENT_TIMEOUT", &cfg.AgentTimeout)
	setDuration("GITFLOW_PUSH_TIMEOUT", &cfg.PushTimeout)
	setDuration("GITFLOW_INSPECT_TIMEOUT", &cfg.InspectTimeout)
}

// Save writes cfg to the local config file in projectDir.
func Save(cfg Config, projectDir string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	path := filepath.Join(projectDir, LocalConfigName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
