package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/report"
	"github.com/jgrefe/tempus/internal/timeutil"
)

var (
	reportWeekFlag  bool
	reportMonthFlag bool
	reportFromFlag  string
	reportToFlag    string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Daily and per-project totals",
	Long: `Show tracked time per day and per project over a period.
The default period is the current week; days without entries show 0.0h.
Archived and still-running entries are not counted.

Examples:
  tempus report
  tempus report --month
  tempus report --from 2024-01-01 --to 2024-01-31`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().BoolVar(&reportWeekFlag, "week", false, "report on the current week (default)")
	reportCmd.Flags().BoolVar(&reportMonthFlag, "month", false, "report on the current month")
	reportCmd.Flags().StringVar(&reportFromFlag, "from", "", "start date (YYYY-MM-DD or DD/MM/YYYY)")
	reportCmd.Flags().StringVar(&reportToFlag, "to", "", "end date (YYYY-MM-DD or DD/MM/YYYY)")
}

// runReport resolves the period and prints the daily series and the
// project breakdown
func runReport() {
	svc, store, cfg, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	now := time.Now()
	var start, end time.Time
	var period string

	switch {
	case reportFromFlag != "" || reportToFlag != "":
		start, end, err = timeutil.ParseDateRangeFlags(reportFromFlag, reportToFlag)
		if err != nil {
			fail("Invalid date range", err, "")
			return
		}
		if start.IsZero() {
			fail("Missing --from", nil, "Custom ranges need both ends; give --from as well")
			return
		}
		period = fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	case reportMonthFlag:
		start, end = timeutil.StartOfMonth(now), timeutil.EndOfMonth(now)
		period = "this month"
	default:
		start = timeutil.StartOfWeek(now, cfg.WeekStartDay)
		end = timeutil.EndOfWeek(now, cfg.WeekStartDay)
		period = "this week"
	}

	data, err := svc.Data()
	if err != nil {
		fail("Failed to read data file", err, "")
		return
	}

	// Completed, non-archived entries inside the period.
	var entries []model.TimeEntry
	for _, e := range data.TimeEntries {
		if e.IsArchived || e.EndTime == nil {
			continue
		}
		if timeutil.IsInRange(e.StartTime, start, end) {
			entries = append(entries, e)
		}
	}

	series, err := report.DailySeries(entries, start, end)
	if err != nil {
		fail("Failed to build report", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Report for %s\n\n", period)
	for _, day := range series {
		bar := strings.Repeat("#", int(day.Hours+0.5))
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %5.1fh  %s\n", day.Day.Format("Mon Jan 02"), day.Hours, bar)
	}

	rows := report.ProjectBreakdown(entries, data.ProjectIndex(), data.ClientIndex())
	if len(rows) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "\nBy project:")
		for _, row := range rows {
			_, _ = fmt.Fprintf(deps.Stdout, "  %-30s %-20s %9s  (%d entries)\n",
				row.ProjectName, row.ClientName, report.FormatDuration(row.Duration), row.EntryCount)
		}
	}

	_, _ = fmt.Fprintf(deps.Stdout, "\nTotal: %s\n", report.FormatDuration(report.SumDuration(entries)))
}
