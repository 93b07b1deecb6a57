package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all pavecheck configuration.
type Config struct {
	// CurveFile is a curve set TOML file (.toml or .toml.zst). When
	// set it takes precedence over the curve library.
	CurveFile string `toml:"curve_file"`

	// CurveDB and CurveSet select a named set from the SQLite curve
	// library. CurveSet empty means the library is not consulted.
	CurveDB  string `toml:"curve_db"`
	CurveSet string `toml:"curve_set"`

	Output OutputConfig `toml:"output"`
}

type OutputConfig struct {
	ShowIterations bool `toml:"show_iterations"`
}

// DefaultConfig returns config with sensible defaults. With no curve
// source configured the builtin example curves are used.
func DefaultConfig() Config {
	return Config{
		CurveDB: defaultDBPath(),
		Output: OutputConfig{
			ShowIterations: true,
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	cfg.CurveFile = expandHome(cfg.CurveFile)
	cfg.CurveDB = expandHome(cfg.CurveDB)

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "pavecheck", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "pavecheck", "config.toml"))
	}

	return paths
}

func defaultDBPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "pavecheck", "curves.db")
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		return "curves.db"
	}
	return filepath.Join(home, ".local", "share", "pavecheck", "curves.db")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
