package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/config"
	"github.com/jgrefe/tempus/internal/service"
	"github.com/jgrefe/tempus/internal/storage"
)

var fileFlag string

var rootCmd = &cobra.Command{
	Use:   "tempus",
	Short: "A client and project time tracker",
	Long: `tempus tracks time against clients and projects in a single data file.

Usage:
  tempus init mydata.json                       Create a new data file
  tempus start <project> <description>          Start the timer
  tempus stop                                   Stop the running entry
  tempus status                                 Show the running entry
  tempus log <project> <desc> --start ... --end ...   Log a completed entry
  tempus list                                   List recent entries
  tempus report --week                          Daily and per-project totals
  tempus export csv                             Export entries as CSV

The data file is chosen by --file, then the default_data_file config
setting, then the standard config directory. Files ending in .db,
.sqlite or .sqlite3 use a SQLite store instead of JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "data file to operate on")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"tempus version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// resolveDataPath picks the data file for this invocation: the --file
// flag wins, then the configured default, then the standard location.
func resolveDataPath() (string, config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath, err := deps.ConfigPath(); err == nil {
		if loaded, err := config.LoadOrDefault(configPath); err == nil {
			cfg = loaded
		}
	}

	if fileFlag != "" {
		return fileFlag, cfg, nil
	}
	if cfg.DefaultDataFile != "" {
		return cfg.DefaultDataFile, cfg, nil
	}

	path, err := deps.DataPath()
	if err != nil {
		return "", cfg, err
	}
	return path, cfg, nil
}

// openService opens the store session for the resolved data file and
// wraps it in the service layer. The caller must defer store.Close().
func openService() (*service.Service, storage.Store, config.Config, error) {
	path, cfg, err := resolveDataPath()
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("determining data file location: %w", err)
	}

	store, err := storage.Open(path)
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("opening %s: %w", path, err)
	}

	rememberSession(path, &cfg)

	return service.New(store), store, cfg, nil
}

// rememberSession records the opened file in the recents list. Config
// write failures are not fatal; the session still works without them.
func rememberSession(path string, cfg *config.Config) {
	if cfg.LastActiveFile == path && len(cfg.RecentFiles) > 0 && cfg.RecentFiles[0] == path {
		return
	}
	cfg.Touch(path)
	if configPath, err := deps.ConfigPath(); err == nil {
		_ = config.Save(configPath, *cfg)
	}
}

// fail prints an Error/Details/Hint triad to stderr and exits.
func fail(message string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", message)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}
