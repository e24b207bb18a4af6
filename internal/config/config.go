// Package config loads the optional .relver.yaml configuration that
// overrides the built-in manifest defaults.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultManifest is the manifest read when neither an argument, the
// environment, nor a config file names one.
const DefaultManifest = "conda-dist/Cargo.toml"

// configFile is the per-project configuration file, looked up in the
// working directory.
const configFile = ".relver.yaml"

// Config is the main configuration structure for relver.
type Config struct {
	// Manifest is the path of the manifest to read.
	Manifest string `yaml:"manifest"`

	// Field is the dot-notation path of the version field. Empty means
	// infer from the manifest filename.
	Field string `yaml:"field,omitempty"`

	// Format names the manifest format (toml, json, yaml, raw, regex).
	// Empty means infer from the manifest filename.
	Format string `yaml:"format,omitempty"`

	// Pattern is the capturing-group regex used with the regex format.
	Pattern string `yaml:"pattern,omitempty"`
}

// LoadConfigFn is a function variable to allow tests to inject failures.
var LoadConfigFn = loadConfig

// Load returns the effective configuration, falling back to built-in
// defaults when no configuration is present.
func Load() (*Config, error) {
	cfg, err := LoadConfigFn()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Manifest == "" {
		cfg.Manifest = DefaultManifest
	}
	return cfg, nil
}

func loadConfig() (*Config, error) {
	// Highest priority: ENV variable
	if envPath := os.Getenv("RELVER_MANIFEST"); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid RELVER_MANIFEST: path traversal not allowed, use absolute path instead")
		}
		return &Config{Manifest: cleanPath}, nil
	}

	// Second priority: YAML file
	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // fallback to default
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
	}

	return &cfg, nil
}
