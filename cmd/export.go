package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/export"
	"github.com/jgrefe/tempus/internal/filter"
	"github.com/jgrefe/tempus/internal/timeutil"
)

var (
	exportFromFlag string
	exportToFlag   string
	exportOutFlag  string
	exportAllFlag  bool
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export time entries to various formats",
	Long: `Export time entries for backup, invoicing, or migration.

Available formats:
  csv     One row per entry with client, project, and duration columns
  json    The raw data document

Examples:
  tempus export csv > entries.csv
  tempus export csv --from 2024-01-01 --to 2024-01-31 -o january.csv
  tempus export json -o backup.json`,
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export time entries as CSV",
	Long: `Export time entries as CSV with the columns Date, Client, Project,
Description, Start Time, End Time, Duration(h:m:s), Duration(decimal).
Fields containing commas, quotes, or newlines are quoted per RFC 4180.

Archived entries are excluded unless --all is given. Running entries
export with an empty end time and blank durations.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV()
	},
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export the raw data document as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportJSONCmd)

	for _, c := range []*cobra.Command{exportCSVCmd, exportJSONCmd} {
		c.Flags().StringVarP(&exportOutFlag, "output", "o", "", "write to file instead of stdout")
	}
	exportCSVCmd.Flags().StringVar(&exportFromFlag, "from", "", "start date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	exportCSVCmd.Flags().StringVar(&exportToFlag, "to", "", "end date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	exportCSVCmd.Flags().BoolVar(&exportAllFlag, "all", false, "include archived entries")
}

// exportWriter picks stdout or the --output file
func exportWriter() (io.Writer, func() error, error) {
	if exportOutFlag == "" {
		return deps.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(exportOutFlag)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}

// exportCSV writes the filtered entries as CSV
func exportCSV() {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	var f filter.Filter
	if exportFromFlag != "" || exportToFlag != "" {
		f.From, f.To, err = timeutil.ParseDateRangeFlags(exportFromFlag, exportToFlag)
		if err != nil {
			fail("Invalid date range", err, "")
			return
		}
	}

	entries, err := svc.Entries(exportAllFlag)
	if err != nil {
		fail("Failed to read entries", err, "")
		return
	}

	data, err := svc.Data()
	if err != nil {
		fail("Failed to read data file", err, "")
		return
	}
	projects := data.ProjectIndex()
	clients := data.ClientIndex()

	entries = filter.Entries(entries, projects, clients, &f)

	w, closeOut, err := exportWriter()
	if err != nil {
		fail(fmt.Sprintf("Failed to create %s", exportOutFlag), err, "")
		return
	}

	if err := export.WriteCSV(w, entries, projects, clients, export.DefaultFormats); err != nil {
		_ = closeOut()
		fail("Failed to write CSV", err, "")
		return
	}

	if err := closeOut(); err != nil {
		fail(fmt.Sprintf("Failed to write %s", exportOutFlag), err, "")
		return
	}

	if exportOutFlag != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Exported %d entries to %s\n", len(entries), exportOutFlag)
	}
}

// exportJSON writes the raw document
func exportJSON() {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	data, err := svc.Data()
	if err != nil {
		fail("Failed to read data file", err, "")
		return
	}

	w, closeOut, err := exportWriter()
	if err != nil {
		fail(fmt.Sprintf("Failed to create %s", exportOutFlag), err, "")
		return
	}

	if err := export.WriteJSON(w, data); err != nil {
		_ = closeOut()
		fail("Failed to write JSON", err, "")
		return
	}

	if err := closeOut(); err != nil {
		fail(fmt.Sprintf("Failed to write %s", exportOutFlag), err, "")
		return
	}
}
