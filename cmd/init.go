package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/config"
	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/service"
	"github.com/jgrefe/tempus/internal/storage"
)

var (
	initSeedFlag    bool
	initDefaultFlag bool
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Create a new data file",
	Long: `Create a new, empty data file. Files ending in .db, .sqlite or
.sqlite3 are created as SQLite databases, everything else as JSON.

With --seed the file starts with a small sample dataset instead of
empty. With --default the file also becomes the default data file in
your settings.

Examples:
  tempus init work.json --default
  tempus init demo.json --seed`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDataFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initSeedFlag, "seed", false, "start with sample data")
	initCmd.Flags().BoolVar(&initDefaultFlag, "default", false, "set as the default data file")
}

// initDataFile creates a new data file at the given path
func initDataFile(path string) {
	if _, err := os.Stat(path); err == nil {
		fail(fmt.Sprintf("%s already exists", path), nil, "Pass a new path, or just use --file to open the existing one")
		return
	}

	store, err := storage.Open(path)
	if err != nil {
		fail(fmt.Sprintf("Failed to create %s", path), err, "")
		return
	}
	defer store.Close()

	svc := service.New(store)

	var data *model.AppData
	if initSeedFlag {
		data, err = svc.Seed()
	} else {
		data = model.NewAppData()
		err = store.Save(data)
	}
	if err != nil {
		fail(fmt.Sprintf("Failed to write %s", path), err, "")
		return
	}

	if configPath, err := deps.ConfigPath(); err == nil {
		cfg, cfgErr := config.LoadOrDefault(configPath)
		if cfgErr == nil {
			if initDefaultFlag {
				cfg.DefaultDataFile = path
			}
			cfg.Touch(path)
			_ = config.Save(configPath, cfg)
		}
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created %s with %d clients, %d projects, %d entries\n",
		path, len(data.Clients), len(data.Projects), len(data.TimeEntries))
}
