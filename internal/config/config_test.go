package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
labels:
  style: "quadd:2"
refs:
  removeParens: true
  keepLinkBrackets: true
input:
  defaultPath: "doc.md"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Labels.Style != "quadd:2" {
			t.Errorf("Labels.Style = %q, want quadd:2", cfg.Labels.Style)
		}
		if !cfg.Refs.RemoveParens || !cfg.Refs.KeepLinkBrackets {
			t.Errorf("Refs = %+v, want both flags true", cfg.Refs)
		}
		if cfg.Input.DefaultPath != "doc.md" {
			t.Errorf("Input.DefaultPath = %q, want doc.md", cfg.Input.DefaultPath)
		}
	})

	t.Run("partial config keeps zero values", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "labels:\n  style: p\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Labels.Style != "p" {
			t.Errorf("Labels.Style = %q, want p", cfg.Labels.Style)
		}
		if cfg.Refs.RemoveParens || cfg.Refs.KeepLinkBrackets {
			t.Errorf("Refs = %+v, want zero values", cfg.Refs)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "labels: [broken\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("oversized field", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "labels:\n  style: "+strings.Repeat("x", MaxStyleLength+1)+"\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("LoadConfig() error = %v, want ErrFieldTooLong", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Labels.Style != "" {
		t.Errorf("Labels.Style = %q, want empty (tag applied downstream)", cfg.Labels.Style)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
