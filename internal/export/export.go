// Package export renders time entries for downstream consumption.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/report"
)

// CSVHeader is the column set of a CSV export, one row per entry.
var CSVHeader = []string{
	"Date", "Client", "Project", "Description",
	"Start Time", "End Time", "Duration(h:m:s)", "Duration(decimal)",
}

// Formats controls how dates and clock times render in the export.
type Formats struct {
	Date string // Go reference layout for the Date column
	Time string // Go reference layout for the Start/End Time columns
}

// DefaultFormats is used when the caller has no preference loaded.
var DefaultFormats = Formats{Date: "2006-01-02", Time: "15:04"}

// WriteCSV writes one row per entry. Quoting and escaping follow RFC
// 4180 via encoding/csv. Dangling project or client references render
// as the unknown placeholders; a running entry has an empty End Time
// and empty duration columns.
func WriteCSV(w io.Writer, entries []model.TimeEntry, projects map[string]model.Project, clients map[string]model.Client, f Formats) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, e := range entries {
		projectName := report.UnknownProject
		clientName := report.UnknownClient
		if p, ok := projects[e.ProjectID]; ok {
			projectName = p.Name
			if c, ok := clients[p.ClientID]; ok {
				clientName = c.Name
			}
		}

		endTime, clock, decimal := "", "", ""
		if e.EndTime != nil {
			endTime = e.EndTime.Format(f.Time)
			clock = report.FormatClock(e.Duration())
			decimal = report.FormatHours(e.Duration(), 2)
		}

		row := []string{
			e.StartTime.Format(f.Date),
			clientName,
			projectName,
			e.Description,
			e.StartTime.Format(f.Time),
			endTime,
			clock,
			decimal,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the raw document, pretty-printed, for backup or
// migration.
func WriteJSON(w io.Writer, data *model.AppData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
