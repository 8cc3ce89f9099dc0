// Package config loads optional YAML defaults for the tex2gfm CLI.
// Command-line flags explicitly set by the user always win over config
// values.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-tex2gfm/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxStyleLength = 20   // "quadd:12" with headroom
	MaxPathLength  = 4096 // PATH_MAX on common filesystems
)

// Config holds all configuration for the rewriter.
type Config struct {
	Labels LabelsConfig `yaml:"labels"`
	Refs   RefsConfig   `yaml:"refs"`
	Input  InputConfig  `yaml:"input"`
}

// LabelsConfig defines equation label rendering defaults.
type LabelsConfig struct {
	Style string `yaml:"style"` // "tag", "p", or "quadd:<n>" (empty = tag)
}

// RefsConfig defines cross-reference rendering defaults.
type RefsConfig struct {
	RemoveParens     bool `yaml:"removeParens"`     // strip parens around references
	KeepLinkBrackets bool `yaml:"keepLinkBrackets"` // [N](#N) instead of [[N](#N)]
}

// InputConfig defines input source defaults.
type InputConfig struct {
	DefaultPath string `yaml:"defaultPath"` // fallback input file (empty = stdin)
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag/env
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field lengths. Style syntax is validated later, where
// the flag value goes through the same parser as the config value.
func (c *Config) Validate() error {
	if err := validateFieldLength("labels.style", c.Labels.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.defaultPath", c.Input.DefaultPath, MaxPathLength); err != nil {
		return err
	}
	return nil
}

func validateFieldLength(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, field, len(value), max)
	}
	return nil
}
