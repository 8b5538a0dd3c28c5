package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/report"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running entry",
	Long: `Stop the currently running time entry, stamping it with the current
time. Fails if no entry is running.

Examples:
  tempus stop`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopEntry()
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

// stopEntry stops the active entry and reports its duration
func stopEntry() {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	active, err := svc.ActiveEntry()
	if err != nil {
		fail("Failed to read running entry", err, "")
		return
	}
	if active == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "No entry is running.")
		return
	}

	stopped, err := svc.Stop(active.ID)
	if err != nil {
		fail("Failed to stop entry", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Stopped: %s (%s)\n",
		describeEntry(*stopped), report.FormatDuration(stopped.Duration()))
}
