package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/announcer/internal/search"
)

const appName = "announcer"

type Config struct {
	SoundRoot string `koanf:"sound_root"` // directory every clip file is resolved under
	Catalogue string `koanf:"catalogue"`  // clips.json path or http(s) URL
	MPRIS     bool   `koanf:"mpris"`      // expose transport controls over D-Bus
	Notify    bool   `koanf:"notify"`     // desktop notification when a playlist finishes

	Search SearchConfig `koanf:"search"`
	Log    LogConfig    `koanf:"log"`
}

// SearchConfig selects the search backend and its input debounce.
type SearchConfig struct {
	Backend    string `koanf:"backend"`     // "trigram" (default) or "fts"
	DebounceMS int    `koanf:"debounce_ms"` // quiet period before filtering (default: 300)
}

// LogConfig enables the debug log. Nothing is logged when File is empty.
type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"` // zerolog level name (default: "info")
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		SoundRoot: "announcements",
		Catalogue: "clips.json",
		MPRIS:     true,
		Notify:    true,
		Search: SearchConfig{
			Backend:    search.BackendTrigram,
			DebounceMS: int(search.DefaultDebounce.Milliseconds()),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the user and working-directory config files, then explicit
// (if non-empty), which must exist. Later files win.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	if explicit != "" {
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", explicit, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.SoundRoot = expandPath(cfg.SoundRoot)
	cfg.Catalogue = expandPath(cfg.Catalogue)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	if !search.ValidBackend(c.Search.Backend) {
		return fmt.Errorf("search.backend: %w: %q", search.ErrUnknownBackend, c.Search.Backend)
	}
	if c.Search.DebounceMS < 0 {
		return fmt.Errorf("search.debounce_ms must not be negative, got %d", c.Search.DebounceMS)
	}
	if c.SoundRoot == "" {
		return fmt.Errorf("sound_root must not be empty")
	}
	if c.Catalogue == "" {
		return fmt.Errorf("catalogue must not be empty")
	}
	return nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/announcer/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
