// Package config loads the lifemap configuration from
// $XDG_CONFIG_HOME/lifemap/config.toml, falling back to defaults for
// anything unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"lifemap/pkg/align"
	"lifemap/pkg/history"
)

// Config holds lifemap configuration.
type Config struct {
	Paths  PathsConfig  `toml:"paths"`
	Editor EditorConfig `toml:"editor"`
}

// PathsConfig locates the board document and the session database.
// Empty values resolve to the data directory at load time.
type PathsConfig struct {
	Board     string `toml:"board"`
	SessionDB string `toml:"session_db"`
}

// EditorConfig tunes the board editor.
type EditorConfig struct {
	SnapThreshold   float64 `toml:"snap_threshold"`
	HistoryCapacity int     `toml:"history_capacity"`
	ZoomMin         float64 `toml:"zoom_min"`
	ZoomMax         float64 `toml:"zoom_max"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			SnapThreshold:   align.DefaultThreshold,
			HistoryCapacity: history.DefaultCapacity,
			ZoomMin:         0.25,
			ZoomMax:         4,
		},
	}
}

// ConfigDir returns the lifemap config directory.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "lifemap")
}

// DataDir returns the lifemap data directory, where the board and
// session database live unless the config points elsewhere.
func DataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "lifemap")
}

// StateDir returns the directory for the log file.
func StateDir() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "lifemap")
}

func defaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config from path, or from the default location when
// path is empty. A missing file yields defaults; a malformed file is
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = defaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.resolvePaths()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolvePaths()
	return cfg, nil
}

func (c *Config) resolvePaths() {
	if c.Paths.Board == "" {
		c.Paths.Board = filepath.Join(DataDir(), "board.json")
	}
	if c.Paths.SessionDB == "" {
		c.Paths.SessionDB = filepath.Join(DataDir(), "sessions.sqlite")
	}
}

func (c *Config) validate() error {
	if c.Editor.SnapThreshold < 0 {
		return fmt.Errorf("snap_threshold must be >= 0, got %v", c.Editor.SnapThreshold)
	}
	if c.Editor.HistoryCapacity < 2 {
		return fmt.Errorf("history_capacity must be >= 2, got %d", c.Editor.HistoryCapacity)
	}
	if c.Editor.ZoomMin <= 0 || c.Editor.ZoomMax < c.Editor.ZoomMin {
		return fmt.Errorf("zoom range [%v, %v] is invalid", c.Editor.ZoomMin, c.Editor.ZoomMax)
	}
	return nil
}
