package gpushell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish
// absent keys from zero values.
type fileConfig struct {
	Title       *string `yaml:"title"`
	Width       *uint32 `yaml:"width"`
	Height      *uint32 `yaml:"height"`
	ControlFlow *string `yaml:"control_flow"`
	Backend     *string `yaml:"backend"`
	Shader      *string `yaml:"shader"`
}

// DefaultConfigPath returns the location of the user config file:
// $XDG_CONFIG_HOME/gpushell/config.yaml, or ~/.config/gpushell/config.yaml.
func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "gpushell", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("gpushell: home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gpushell", "config.yaml"), nil
}

// LoadConfigFile reads the YAML file at path and applies it on top of base.
// Keys missing from the file keep the values of base.
func LoadConfigFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("gpushell: read config %s: %w", path, err)
	}
	cfg, err := DecodeConfig(bytes.NewReader(data), base)
	if err != nil {
		return base, fmt.Errorf("gpushell: config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefaultConfig applies the file at DefaultConfigPath to base.
// A missing file is not an error.
func LoadDefaultConfig(base Config) (Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return base, err
	}
	cfg, err := LoadConfigFile(path, base)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	return cfg, err
}

// DecodeConfig decodes a YAML document from r on top of base and validates
// the result. Unknown keys are rejected.
func DecodeConfig(r io.Reader, base Config) (Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode: %w", err)
	}

	cfg := base
	if fc.Title != nil {
		cfg.Title = *fc.Title
	}
	if fc.Width != nil {
		cfg.Width = *fc.Width
	}
	if fc.Height != nil {
		cfg.Height = *fc.Height
	}
	if fc.ControlFlow != nil {
		f, err := ParseControlFlow(*fc.ControlFlow)
		if err != nil {
			return base, err
		}
		cfg.ControlFlow = f
	}
	if fc.Backend != nil {
		cfg.Backend = *fc.Backend
	}
	if fc.Shader != nil {
		cfg.ShaderPath = *fc.Shader
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}
