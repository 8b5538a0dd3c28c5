package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/filter"
	"github.com/jgrefe/tempus/internal/report"
	"github.com/jgrefe/tempus/internal/timeutil"
)

var (
	listArchivedFlag bool
	listSearchFlag   string
	listProjectFlag  string
	listClientFlag   string
	listFromFlag     string
	listToFlag       string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries",
	Long: `List time entries, most recent first. Archived entries are hidden
unless --archived is given.

Filtering:
  --search    case-insensitive substring match on descriptions
  --project   project id or name
  --client    client id or name
  --from/--to date range on the start time (YYYY-MM-DD or DD/MM/YYYY)

Examples:
  tempus list
  tempus list --project "Website Redesign"
  tempus list --from 2024-01-01 --to 2024-01-31
  tempus list --search mockups --archived`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listArchivedFlag, "archived", false, "include archived entries")
	listCmd.Flags().StringVar(&listSearchFlag, "search", "", "substring match on descriptions")
	listCmd.Flags().StringVar(&listProjectFlag, "project", "", "filter by project id or name")
	listCmd.Flags().StringVar(&listClientFlag, "client", "", "filter by client id or name")
	listCmd.Flags().StringVar(&listFromFlag, "from", "", "start date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	listCmd.Flags().StringVar(&listToFlag, "to", "", "end date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
}

// listEntries displays entries matching the filter flags
func listEntries() {
	svc, store, cfg, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	f := &filter.Filter{
		Keyword: listSearchFlag,
		Project: listProjectFlag,
		Client:  listClientFlag,
	}
	if listFromFlag != "" || listToFlag != "" {
		f.From, f.To, err = timeutil.ParseDateRangeFlags(listFromFlag, listToFlag)
		if err != nil {
			fail("Invalid date range", err, "")
			return
		}
	}

	entries, err := svc.Entries(listArchivedFlag)
	if err != nil {
		fail("Failed to read entries", err, "If the data file was edited by hand, restore a backup with 'tempus restore'")
		return
	}

	data, err := svc.Data()
	if err != nil {
		fail("Failed to read data file", err, "")
		return
	}
	projects := data.ProjectIndex()
	clients := data.ClientIndex()

	entries = filter.Entries(entries, projects, clients, f)

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries found.")
		return
	}

	layout := cfg.DateFormat + ", " + cfg.TimeLayout()
	for _, e := range entries {
		projectName := report.UnknownProject
		clientName := report.UnknownClient
		if p, ok := projects[e.ProjectID]; ok {
			projectName = p.Name
			if c, ok := clients[p.ClientID]; ok {
				clientName = c.Name
			}
		}

		duration := "running"
		if e.EndTime != nil {
			duration = report.FormatDuration(e.Duration())
		}
		archived := ""
		if e.IsArchived {
			archived = " [archived]"
		}

		_, _ = fmt.Fprintf(deps.Stdout, "%s  %-9s  %s - %s / %s%s\n",
			e.StartTime.Format(layout), duration, describeEntry(e), projectName, clientName, archived)
		_, _ = fmt.Fprintf(deps.Stdout, "  id: %s\n", e.ID)
	}

	_, _ = fmt.Fprintf(deps.Stdout, "\nTotal: %s over %d entries\n",
		report.FormatDuration(report.SumDuration(entries)), len(entries))
}
