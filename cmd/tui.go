package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard for tempus.

The dashboard shows the running timer with a live elapsed display and
today's entries with their total.

Keyboard shortcuts:
  s    Start a timer (type "project: description", then Enter)
  x    Stop the running timer
  r    Refresh from the data file
  q    Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI opens the store session and runs the dashboard
func runTUI() {
	svc, store, cfg, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Run 'tempus init <file>' to create one")
		return
	}
	defer func() { _ = store.Close() }()

	if err := tui.Run(svc, cfg); err != nil {
		fail("Dashboard exited with an error", err, "")
		return
	}
}
