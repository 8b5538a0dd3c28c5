package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display configuration settings",
	Long: `Display the current effective configuration settings for tempus.

Shows the configuration file location, whether it exists, and all current
settings. Configuration values are merged from the config file with
sensible defaults.

By default, tempus works without any configuration file. All settings
have defaults:
  - date_format: January 2, 2006
  - time_format: 12h
  - theme: default
  - week_start_day: monday

Configuration file location:
  ~/.config/tempus/config.toml       Linux/macOS
  %APPDATA%\tempus\config.toml       Windows

To customize settings, create a config.toml file at the location shown above.`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		fail("Failed to determine config file location", err, "Check that your home directory is accessible")
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fail("Failed to load configuration", err,
			fmt.Sprintf("Check that your config file is valid TOML format: %s", configPath))
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for tempus")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Date Format:     %s\n", cfg.DateFormat)
	_, _ = fmt.Fprintf(deps.Stdout, "Time Format:     %s\n", cfg.TimeFormat)
	_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "Week Start Day:  %s\n", cfg.WeekStartDay)

	if cfg.DefaultDataFile == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Data File:       (standard location)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Data File:       %s\n", cfg.DefaultDataFile)
	}

	if len(cfg.RecentFiles) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, "Recent Files:")
		for _, f := range cfg.RecentFiles {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", f)
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Create a config.toml file at the above location to customize settings.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}
