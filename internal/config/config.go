package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the main agentpulse configuration
type Config struct {
	Store StoreConfig `toml:"store"`
	Poll  PollConfig  `toml:"poll"`
	UI    UIConfig    `toml:"ui"`
}

type StoreConfig struct {
	Root string `toml:"root"`
}

type PollConfig struct {
	Interval string `toml:"interval"`
	Watch    bool   `toml:"watch"`
}

type UIConfig struct {
	Color         bool `toml:"color"`
	ShowCompleted bool `toml:"show_completed"`
}

// RootDir returns the store root with a leading ~ expanded
func (c *Config) RootDir() string {
	return ExpandHome(c.Store.Root)
}

// Interval parses the poll interval, falling back to the default when the
// value is missing or malformed
func (c *Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.Poll.Interval)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return ExpandHome("~/.agentpulse/config.toml")
}
