// Package config holds user settings: display preferences and the
// session bookkeeping for data files. Settings live in a TOML file
// apart from the tracked data itself.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jgrefe/tempus/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "tempus"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// MaxRecentFiles is how many recently opened data files are remembered
	MaxRecentFiles = 5
)

// Config represents the user settings.
type Config struct {
	// DateFormat is the Go reference layout used when rendering dates
	DateFormat string `toml:"date_format"`
	// TimeFormat selects clock rendering: "12h" or "24h"
	TimeFormat string `toml:"time_format"`
	// Theme is the TUI color theme name
	Theme string `toml:"theme"`
	// WeekStartDay defines which day starts the week (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// DefaultDataFile is used when no --file flag is given
	DefaultDataFile string `toml:"default_data_file"`
	// LastActiveFile is the most recently opened data file
	LastActiveFile string `toml:"last_active_file"`
	// RecentFiles lists recently opened data files, most recent first
	RecentFiles []string `toml:"recent_files"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DateFormat:   "January 2, 2006",
		TimeFormat:   "12h",
		Theme:        "default",
		WeekStartDay: "monday",
	}
}

// TimeLayout returns the Go reference layout for the configured clock
// style.
func (c Config) TimeLayout() string {
	if c.TimeFormat == "24h" {
		return "15:04"
	}
	return "3:04 PM"
}

// GetConfigPath returns the path to the config file.
// Uses the user config dir for a cross-platform XDG-compliant location.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file, falling back to defaults for a
// missing file. Fields absent from the file keep their default value.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// Save writes the config back to disk.
func Save(path string, cfg Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(cfg)
}

// Touch records a data file as the active session file: it becomes the
// last active file and moves to the front of the recents list, which is
// capped at MaxRecentFiles.
func (c *Config) Touch(dataPath string) {
	c.LastActiveFile = dataPath

	recents := []string{dataPath}
	for _, r := range c.RecentFiles {
		if r != dataPath {
			recents = append(recents, r)
		}
	}
	if len(recents) > MaxRecentFiles {
		recents = recents[:MaxRecentFiles]
	}
	c.RecentFiles = recents
}
