// Package config loads the optional graft.yaml (or .json) configuration
// file consulted by the CLI commands. A missing file is not an error:
// defaults apply.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag overrides it.
const DefaultPath = "graft.yaml"

// Config is the root of the configuration file.
type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Log    LogConfig    `yaml:"log" json:"log"`
	Shell  ShellConfig  `yaml:"shell" json:"shell"`
}

// ServerConfig configures the HTTP editor server.
type ServerConfig struct {
	Addr  string `yaml:"addr" json:"addr"`
	Title string `yaml:"title" json:"title"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// ShellConfig configures the interactive shell.
type ShellConfig struct {
	Module string `yaml:"module" json:"module"`
	Script string `yaml:"script" json:"script"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8060", Title: "graft editor"},
		Log:    LogConfig{Level: "info", Format: "text"},
		Shell:  ShellConfig{Module: "math"},
	}
}

// Load reads a configuration file (YAML or JSON, by extension) and merges
// it over the defaults. A missing file yields the defaults; an unreadable
// or unparsable file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, nil
}

// SlogLevel converts the configured level name to a slog.Level.
// Unknown names fall back to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
