// Package report derives duration aggregates from time entry snapshots.
// Everything here is a pure function: no persistence, no I/O, and the
// same inputs always yield the same output. Callers are expected to
// pass completed, non-archived entries unless noted otherwise.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/jgrefe/tempus/internal/model"
)

const (
	// UnknownProject is the display name for a dangling project reference.
	UnknownProject = "Unknown Project"
	// UnknownClient is the display name for a dangling client reference.
	UnknownClient = "Unknown Client"
)

// DayKey is the calendar-day bucket format, in local time.
const DayKey = "2006-01-02"

// SumDuration totals the tracked time over the entries. Running entries
// contribute nothing; a negative span clamps to zero so a total can
// never be negative.
func SumDuration(entries []model.TimeEntry) time.Duration {
	var total time.Duration
	for _, e := range entries {
		total += e.Duration()
	}
	return total
}

// GroupByDay partitions entries by the local calendar day of their
// start time and sums durations per day.
func GroupByDay(entries []model.TimeEntry) map[string]time.Duration {
	byDay := make(map[string]time.Duration)
	for _, e := range entries {
		if e.EndTime == nil {
			continue
		}
		byDay[e.StartTime.Format(DayKey)] += e.Duration()
	}
	return byDay
}

// GroupByProject sums durations per project id.
func GroupByProject(entries []model.TimeEntry) map[string]time.Duration {
	byProject := make(map[string]time.Duration)
	for _, e := range entries {
		if e.EndTime == nil {
			continue
		}
		byProject[e.ProjectID] += e.Duration()
	}
	return byProject
}

// ProjectRow is one line of a per-project breakdown with display names
// joined in.
type ProjectRow struct {
	ProjectID   string
	ProjectName string
	ClientName  string
	Duration    time.Duration
	EntryCount  int
}

// ProjectBreakdown groups entries by project and joins project and
// client names for display. Dangling references render as "Unknown
// Project" / "Unknown Client" rather than failing, so a breakdown stays
// usable after hard deletes. Rows are sorted by duration descending.
func ProjectBreakdown(entries []model.TimeEntry, projects map[string]model.Project, clients map[string]model.Client) []ProjectRow {
	byProject := make(map[string]*ProjectRow)

	for _, e := range entries {
		if e.EndTime == nil {
			continue
		}
		row, ok := byProject[e.ProjectID]
		if !ok {
			row = &ProjectRow{
				ProjectID:   e.ProjectID,
				ProjectName: UnknownProject,
				ClientName:  UnknownClient,
			}
			if p, found := projects[e.ProjectID]; found {
				row.ProjectName = p.Name
				if c, found := clients[p.ClientID]; found {
					row.ClientName = c.Name
				}
			}
			byProject[e.ProjectID] = row
		}
		row.Duration += e.Duration()
		row.EntryCount++
	}

	rows := make([]ProjectRow, 0, len(byProject))
	for _, row := range byProject {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Duration != rows[j].Duration {
			return rows[i].Duration > rows[j].Duration
		}
		return rows[i].ProjectName < rows[j].ProjectName
	})
	return rows
}

// DayTotal is one element of a daily series.
type DayTotal struct {
	Day   time.Time
	Hours float64
}

// DailySeries produces one element per calendar day across the closed
// interval [start, end], zero-filled for days without entries. The
// element count is always the number of days in the interval.
func DailySeries(entries []model.TimeEntry, start, end time.Time) ([]DayTotal, error) {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	if startDay.After(endDay) {
		return nil, fmt.Errorf("malformed interval: start %s is after end %s", start.Format(DayKey), end.Format(DayKey))
	}

	byDay := GroupByDay(entries)

	var series []DayTotal
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		series = append(series, DayTotal{
			Day:   day,
			Hours: byDay[day.Format(DayKey)].Hours(),
		})
	}
	return series, nil
}
