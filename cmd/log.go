package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	naturaldate "github.com/tj/go-naturaldate"

	"github.com/jgrefe/tempus/internal/report"
	"github.com/jgrefe/tempus/internal/service"
)

var (
	logStartFlag    string
	logEndFlag      string
	logDurationFlag time.Duration
	logBatchFlag    string
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log [project] [description...]",
	Short: "Log a completed entry after the fact",
	Long: `Log a completed time entry with explicit start and end times.
The entry never touches the running timer.

Times accept RFC 3339, "YYYY-MM-DD HH:MM", or natural language like
"yesterday at 9am" or "2 hours ago". Instead of --end you can give
--duration, measured from the start time.

With --batch, entries are read from a JSON file (an array of objects
with project, description, start, end). The batch is all or nothing: a
single invalid row aborts the whole import.

Examples:
  tempus log "Website Redesign" mockups --start "9am" --end "11:30am"
  tempus log p1 standup --start "yesterday at 10am" --duration 30m
  tempus log --batch entries.json`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if logBatchFlag != "" {
			logBatch(logBatchFlag)
			return
		}
		if len(args) < 1 {
			fail("Missing project", nil, "Usage: tempus log <project> <description> --start ... --end ...")
			return
		}
		logManual(args[0], strings.TrimSpace(strings.Join(args[1:], " ")))
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVar(&logStartFlag, "start", "", "start time (required unless --batch)")
	logCmd.Flags().StringVar(&logEndFlag, "end", "", "end time")
	logCmd.Flags().DurationVar(&logDurationFlag, "duration", 0, "duration from start, as an alternative to --end (e.g. 90m, 2h)")
	logCmd.Flags().StringVar(&logBatchFlag, "batch", "", "JSON file with entries to import atomically")
}

// logManual creates a single completed entry from the flags
func logManual(projectRef, description string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	project, err := findProject(svc, projectRef)
	if err != nil {
		fail(fmt.Sprintf("Unknown project '%s'", projectRef), err, "Run 'tempus project list' to see available projects")
		return
	}

	if logStartFlag == "" {
		fail("Missing --start", nil, "Give a start time, e.g. --start \"yesterday at 9am\"")
		return
	}

	now := time.Now()
	start, err := parseWhen(logStartFlag, now)
	if err != nil {
		fail(fmt.Sprintf("Invalid --start '%s'", logStartFlag), err, "Use RFC 3339, \"YYYY-MM-DD HH:MM\", or natural language")
		return
	}

	var end time.Time
	switch {
	case logEndFlag != "" && logDurationFlag != 0:
		fail("Cannot use --end together with --duration", nil, "")
		return
	case logEndFlag != "":
		end, err = parseWhen(logEndFlag, now)
		if err != nil {
			fail(fmt.Sprintf("Invalid --end '%s'", logEndFlag), err, "Use RFC 3339, \"YYYY-MM-DD HH:MM\", or natural language")
			return
		}
	case logDurationFlag != 0:
		end = start.Add(logDurationFlag)
	default:
		fail("Missing --end or --duration", nil, "Give an end time or a duration from the start")
		return
	}

	entry, err := svc.LogManual(service.ManualEntry{
		ProjectID:   project.ID,
		Description: description,
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		fail("Failed to log entry", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s @ %s (%s)\n",
		describeEntry(*entry), project.Name, report.FormatDuration(entry.Duration()))
}

// batchRow is one row of a --batch import file.
type batchRow struct {
	Project     string `json:"project"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// logBatch imports entries from a JSON file, all or nothing
func logBatch(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		fail(fmt.Sprintf("Failed to read batch file %s", path), err, "")
		return
	}

	var rows []batchRow
	if err := json.Unmarshal(content, &rows); err != nil {
		fail("Invalid batch file", err, "Expected a JSON array of {project, description, start, end} objects")
		return
	}
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing to import.")
		return
	}

	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	now := time.Now()
	inputs := make([]service.ManualEntry, 0, len(rows))
	for i, row := range rows {
		project, err := findProject(svc, row.Project)
		if err != nil {
			fail(fmt.Sprintf("Entry %d (%q): unknown project '%s'", i+1, row.Description, row.Project), err, "")
			return
		}
		start, err := parseWhen(row.Start, now)
		if err != nil {
			fail(fmt.Sprintf("Entry %d (%q): invalid start time", i+1, row.Description), err, "")
			return
		}
		end, err := parseWhen(row.End, now)
		if err != nil {
			fail(fmt.Sprintf("Entry %d (%q): invalid end time", i+1, row.Description), err, "")
			return
		}
		inputs = append(inputs, service.ManualEntry{
			ProjectID:   project.ID,
			Description: row.Description,
			StartTime:   start,
			EndTime:     end,
		})
	}

	created, err := svc.LogBatch(inputs)
	if err != nil {
		fail("Batch rejected, nothing was imported", err, "Fix the named entry and re-run")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Imported %d entries (%s total)\n",
		len(created), report.FormatDuration(report.SumDuration(created)))
}

// parseWhen parses a point in time: RFC 3339 first, then a date-time or
// date layout, then natural language relative to now (biased to the
// past, since logged work already happened).
func parseWhen(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("time cannot be empty")
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", input, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return t, nil
	}

	return naturaldate.Parse(input, now, naturaldate.WithDirection(naturaldate.Past))
}
