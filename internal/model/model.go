// Package model defines the persisted entities of the tempus data file:
// clients, the projects that belong to them, and the time entries logged
// against those projects. The whole dataset is read and written as one
// AppData document.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a billable customer. Archiving hides a client from default
// views without removing it; deleting a client cascades to its projects
// and their time entries.
type Client struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsArchived bool   `json:"isArchived"`
}

// Project belongs to exactly one client for its lifetime.
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientID   string `json:"clientId"`
	IsArchived bool   `json:"isArchived"`
}

// TimeEntry is a single tracked block of work. A nil EndTime marks the
// entry as running; at most one non-archived entry may be running at a
// time across the whole dataset.
type TimeEntry struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	IsArchived  bool       `json:"isArchived"`
}

// IsRunning reports whether the entry has not been stopped yet.
func (e TimeEntry) IsRunning() bool {
	return e.EndTime == nil
}

// Duration returns the tracked span of a completed entry.
// Running entries and entries with an end before their start report zero,
// so totals built from durations can never go negative.
func (e TimeEntry) Duration() time.Duration {
	if e.EndTime == nil {
		return 0
	}
	d := e.EndTime.Sub(e.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// AppData is the entire persisted state, always loaded and saved as one
// unit. Mutations go through the service layer, never directly.
type AppData struct {
	Clients     []Client    `json:"clients"`
	Projects    []Project   `json:"projects"`
	TimeEntries []TimeEntry `json:"timeEntries"`
}

// NewAppData returns an empty workspace with all collections allocated.
func NewAppData() *AppData {
	return &AppData{
		Clients:     []Client{},
		Projects:    []Project{},
		TimeEntries: []TimeEntry{},
	}
}

// Valid reports whether the document has the required shape: all three
// collections present as arrays (possibly empty). A decoded file that
// fails this check is not a tempus data file.
func (d *AppData) Valid() bool {
	return d.Clients != nil && d.Projects != nil && d.TimeEntries != nil
}

// ClientByID returns the client with the given id, if present.
func (d *AppData) ClientByID(id string) (Client, bool) {
	for _, c := range d.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// ProjectByID returns the project with the given id, if present.
func (d *AppData) ProjectByID(id string) (Project, bool) {
	for _, p := range d.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// EntryByID returns the time entry with the given id, if present.
func (d *AppData) EntryByID(id string) (TimeEntry, bool) {
	for _, e := range d.TimeEntries {
		if e.ID == id {
			return e, true
		}
	}
	return TimeEntry{}, false
}

// ProjectIndex returns the projects keyed by id, for joins.
func (d *AppData) ProjectIndex() map[string]Project {
	idx := make(map[string]Project, len(d.Projects))
	for _, p := range d.Projects {
		idx[p.ID] = p
	}
	return idx
}

// ClientIndex returns the clients keyed by id, for joins.
func (d *AppData) ClientIndex() map[string]Client {
	idx := make(map[string]Client, len(d.Clients))
	for _, c := range d.Clients {
		idx[c.ID] = c
	}
	return idx
}

// NewID returns a fresh unique entity id.
func NewID() string {
	return uuid.NewString()
}

// ClientUpdate describes a patch to a client. Nil fields are untouched.
type ClientUpdate struct {
	Name     *string
	Archived *bool
}

// ProjectUpdate describes a patch to a project. Nil fields are untouched.
type ProjectUpdate struct {
	Name     *string
	Archived *bool
}

// EntryUpdate describes a patch to a time entry. Nil fields are
// untouched. EndTime can only be set to a concrete time, never cleared
// back to running; starting a new timer is the only way to get a running
// entry.
type EntryUpdate struct {
	Description *string
	ProjectID   *string
	StartTime   *time.Time
	EndTime     *time.Time
	Archived    *bool
}
