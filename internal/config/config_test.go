package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.CurveFile != "" {
		t.Errorf("default curve_file should be empty, got %q", cfg.CurveFile)
	}
	if cfg.CurveDB == "" {
		t.Error("default curve_db should be set")
	}
	if cfg.CurveSet != "" {
		t.Errorf("default curve_set should be empty, got %q", cfg.CurveSet)
	}
	if !cfg.Output.ShowIterations {
		t.Error("iterations should be shown by default")
	}
}

func TestLoad_FromXDGConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "pavecheck")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
curve_file = "/data/astm.toml.zst"
curve_set = "astm-2023"

[output]
show_iterations = false
`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CurveFile != "/data/astm.toml.zst" {
		t.Errorf("curve_file = %q", cfg.CurveFile)
	}
	if cfg.CurveSet != "astm-2023" {
		t.Errorf("curve_set = %q", cfg.CurveSet)
	}
	if cfg.Output.ShowIterations {
		t.Error("show_iterations should be false")
	}
	// Unset keys keep their defaults.
	if cfg.CurveDB == "" {
		t.Error("curve_db default lost on load")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CurveFile != "" || cfg.CurveSet != "" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "pavecheck")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("curve_file = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	got := expandHome("~/curves/astm.toml")
	want := filepath.Join(home, "curves", "astm.toml")
	if got != want {
		t.Errorf("expandHome = %q, want %q", got, want)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path mangled: %q", got)
	}
}
