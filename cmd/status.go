package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/report"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running entry",
	Long: `Show the currently running time entry, if any.

Displays the description, project, client, start time, and elapsed time.
If nothing is running, says so.

Examples:
  tempus status`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// showStatus displays the running entry
func showStatus() {
	svc, store, cfg, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	active, err := svc.ActiveEntry()
	if err != nil {
		fail("Failed to read running entry", err, "If the data file was edited by hand, restore a backup with 'tempus restore'")
		return
	}

	if active == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "No entry is running.")
		return
	}

	data, err := svc.Data()
	if err != nil {
		fail("Failed to read data file", err, "")
		return
	}

	projectName := report.UnknownProject
	clientName := report.UnknownClient
	if p, ok := data.ProjectByID(active.ProjectID); ok {
		projectName = p.Name
		if c, ok := data.ClientByID(p.ClientID); ok {
			clientName = c.Name
		}
	}

	elapsed := time.Since(active.StartTime)
	_, _ = fmt.Fprintf(deps.Stdout, "Running: %s\n", describeEntry(*active))
	_, _ = fmt.Fprintf(deps.Stdout, "Project: %s (%s)\n", projectName, clientName)
	_, _ = fmt.Fprintf(deps.Stdout, "Started: %s\n", active.StartTime.Format(cfg.DateFormat+", "+cfg.TimeLayout()))
	_, _ = fmt.Fprintf(deps.Stdout, "Elapsed: %s\n", report.FormatDuration(elapsed))
}
