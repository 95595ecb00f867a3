// Package config loads the optional cminus.yaml settings file shared by the
// command line compiler and the language server.
package config

import (
	goerrors "errors"
	"fmt"
	"io/fs"
	"os"

	"cminus/internal/parser"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "cminus.yaml"

// Config holds the user-tunable settings.
type Config struct {
	// Trace prints the symbol table listing while resolving names.
	Trace bool `yaml:"trace"`
	// MaxDepth caps statement and expression nesting in the parser.
	MaxDepth int `yaml:"max_depth"`
	// Color enables colored diagnostics in the terminal.
	Color bool `yaml:"color"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		MaxDepth: parser.DefaultMaxDepth,
		Color:    true,
	}
}

// Load reads path on top of the defaults. An empty path means DefaultFile,
// which may be missing; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && goerrors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, leaving unset fields untouched.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", cfg.MaxDepth)
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = parser.DefaultMaxDepth
	}
	return nil
}
