// Package config loads the CLI's runtime settings from layered sources —
// built-in defaults, an optional YAML file, then environment variables —
// using koanf, the same layering the rest of the example corpus uses for
// its own configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is prepended to every environment variable this package reads,
// e.g. NEEDSOLVER_DATA_DIR.
const EnvPrefix = "NEEDSOLVER_"

// Config holds the directories and defaults the CLI needs to find its
// documents and persist a session's profile between invocations.
type Config struct {
	// DataDir holds the four documents loader.Load* expects: features.yaml,
	// catalog.yaml, needs.yaml, questions.yaml.
	DataDir string `koanf:"data_dir"`

	// ProfilePath is where the running session's UserProfile is persisted
	// between CLI invocations (spec §6 treats this as caller-side state,
	// not a core responsibility).
	ProfilePath string `koanf:"profile_path"`

	// Epsilon is the selector's advisory convergence threshold (spec §4.6).
	Epsilon float64 `koanf:"epsilon"`

	// LogLevel is one of trace/debug/info/warn/error/fatal/panic/disabled.
	LogLevel string `koanf:"log_level"`

	// LogFormat is "json" or "console".
	LogFormat string `koanf:"log_format"`

	// NoColor disables lipgloss styling for non-interactive terminals.
	NoColor bool `koanf:"no_color"`
}

func defaults() Config {
	return Config{
		DataDir:     "./data",
		ProfilePath: "./needsolver-profile.yaml",
		Epsilon:     0.01,
		LogLevel:    "info",
		LogFormat:   "console",
		NoColor:     false,
	}
}

// Load builds a Config from, in increasing precedence: built-in defaults,
// the optional YAML file at configPath (skipped silently if it does not
// exist), then NEEDSOLVER_-prefixed environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config: load file %s: %w", configPath, err)
			}
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", envTransform)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// envTransform turns NEEDSOLVER_DATA_DIR into "data_dir", matching the
// koanf struct tags above.
func envTransform(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ToLower(s)
}
