package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/minijava/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.Color != "auto" {
		t.Errorf("default color = %q, want auto", cfg.Color)
	}
	if !cfg.Warnings.UnusedVariables {
		t.Error("unused-variables disabled by default")
	}
	if cfg.HistoryDB != "" {
		t.Errorf("default history = %q, want empty", cfg.HistoryDB)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
color: never
history: runs.db
warnings:
  unused-variables: false
`)
	cfg, err := config.Load(path, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Color != "never" {
		t.Errorf("color = %q, want never", cfg.Color)
	}
	if cfg.HistoryDB != "runs.db" {
		t.Errorf("history = %q, want runs.db", cfg.HistoryDB)
	}
	if cfg.Warnings.UnusedVariables {
		t.Error("unused-variables not disabled")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "color: always\n")
	cfg, err := config.Load(path, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Color != "always" {
		t.Errorf("color = %q, want always", cfg.Color)
	}
	if !cfg.Warnings.UnusedVariables {
		t.Error("partial config dropped the unused-variables default")
	}
}

func TestLoadMissingDefaultLocation(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	if err != nil {
		t.Fatalf("missing default config treated as error: %v", err)
	}
	if cfg.Color != "auto" {
		t.Errorf("color = %q, want auto defaults", cfg.Color)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), true); err == nil {
		t.Fatal("missing explicit config not reported")
	}
}

func TestLoadInvalidColor(t *testing.T) {
	path := writeConfig(t, "color: sometimes\n")
	if _, err := config.Load(path, true); err == nil {
		t.Fatal("invalid color mode accepted")
	}
}
