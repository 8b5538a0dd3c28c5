// Package filter narrows time entry listings for display and export.
package filter

import (
	"strings"
	"time"

	"github.com/jgrefe/tempus/internal/model"
)

// Filter represents search and filtering criteria for time entries.
// All fields are optional - empty values match all entries.
type Filter struct {
	Keyword string    // Case-insensitive substring search in descriptions
	Project string    // Project id or name (case-insensitive)
	Client  string    // Client id or name (case-insensitive)
	From    time.Time // Inclusive lower bound on StartTime (zero = unbounded)
	To      time.Time // Inclusive upper bound on StartTime (zero = unbounded)
}

// IsEmpty returns true if all filter fields are empty (matches all entries).
func (f *Filter) IsEmpty() bool {
	return f.Keyword == "" && f.Project == "" && f.Client == "" && f.From.IsZero() && f.To.IsZero()
}

// Matches reports whether the entry passes every criterion. The entry's
// resolved project and client names are supplied by the caller, which
// already holds the joined lookup maps.
func (f *Filter) Matches(e model.TimeEntry, projectName, clientID, clientName string) bool {
	if f.Keyword != "" && !strings.Contains(strings.ToLower(e.Description), strings.ToLower(f.Keyword)) {
		return false
	}
	if f.Project != "" && !strings.EqualFold(f.Project, e.ProjectID) && !strings.EqualFold(f.Project, projectName) {
		return false
	}
	if f.Client != "" && !strings.EqualFold(f.Client, clientID) && !strings.EqualFold(f.Client, clientName) {
		return false
	}
	if !f.From.IsZero() && e.StartTime.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.StartTime.After(f.To) {
		return false
	}
	return true
}

// Entries returns the entries that match the filter, using the given
// lookup tables to resolve names. A nil or empty filter returns the
// input unchanged.
func Entries(entries []model.TimeEntry, projects map[string]model.Project, clients map[string]model.Client, f *Filter) []model.TimeEntry {
	if f == nil || f.IsEmpty() {
		return entries
	}

	filtered := make([]model.TimeEntry, 0, len(entries))
	for _, e := range entries {
		var projectName, clientID, clientName string
		if p, ok := projects[e.ProjectID]; ok {
			projectName = p.Name
			clientID = p.ClientID
			if c, ok := clients[p.ClientID]; ok {
				clientName = c.Name
			}
		}
		if f.Matches(e, projectName, clientID, clientName) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
