package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/jgrefe/tempus/internal/model"
)

// ManualEntry is the input for a completed entry logged after the fact.
type ManualEntry struct {
	ProjectID   string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

// Entries returns time entries sorted by start time descending.
// Archived entries are filtered out unless includeArchived is set.
func (s *Service) Entries(includeArchived bool) ([]model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	entries := make([]model.TimeEntry, 0, len(data.TimeEntries))
	for _, e := range data.TimeEntries {
		if includeArchived || !e.IsArchived {
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime.After(entries[j].StartTime)
	})

	return entries, nil
}

// ActiveEntry returns the single running entry, or nil when the timer is
// idle. Finding more than one running entry means the data file was
// mutated outside the service and is reported as an invariant violation.
func (s *Service) ActiveEntry() (*model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	return activeEntry(data)
}

func activeEntry(data *model.AppData) (*model.TimeEntry, error) {
	var active []model.TimeEntry
	for _, e := range data.TimeEntries {
		if e.IsRunning() && !e.IsArchived {
			active = append(active, e)
		}
	}

	switch len(active) {
	case 0:
		return nil, nil
	case 1:
		return &active[0], nil
	default:
		return nil, &InvariantViolationError{Count: len(active)}
	}
}

// Start begins tracking a new entry against the given project. A
// running entry is implicitly stopped first, stamped with the same
// instant the new entry starts at, which models switching tasks.
func (s *Service) Start(projectID, description string) (*model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	if _, ok := data.ProjectByID(projectID); !ok {
		return nil, &ValidationError{Field: "projectId", Reason: fmt.Sprintf("project %s does not exist", projectID)}
	}

	now := s.now()

	running, err := activeEntry(data)
	if err != nil {
		return nil, err
	}
	if running != nil {
		for i := range data.TimeEntries {
			if data.TimeEntries[i].ID == running.ID {
				end := now
				data.TimeEntries[i].EndTime = &end
			}
		}
	}

	e := model.TimeEntry{
		ID:          model.NewID(),
		ProjectID:   projectID,
		Description: description,
		StartTime:   now,
		EndTime:     nil,
	}
	data.TimeEntries = append(data.TimeEntries, e)

	if err := s.save(data); err != nil {
		return nil, err
	}

	return &e, nil
}

// Stop stamps the entry with the current time, completing it.
func (s *Service) Stop(id string) (*model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := entryIndex(data, id)
	if idx < 0 {
		return nil, &NotFoundError{Kind: "time entry", ID: id}
	}
	if !data.TimeEntries[idx].IsRunning() {
		return nil, &AlreadyStoppedError{ID: id}
	}

	end := s.now()
	data.TimeEntries[idx].EndTime = &end

	if err := s.save(data); err != nil {
		return nil, err
	}

	stopped := data.TimeEntries[idx]
	return &stopped, nil
}

// LogManual creates a completed entry from explicit start and end
// times. It never touches the running entry.
func (s *Service) LogManual(in ManualEntry) (*model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	if verr := validateManual(data, in); verr != nil {
		return nil, verr
	}

	e := newManualEntry(in)
	data.TimeEntries = append(data.TimeEntries, e)

	if err := s.save(data); err != nil {
		return nil, err
	}

	return &e, nil
}

// LogBatch creates completed entries for every input, all or nothing.
// Every row is validated before anything is appended; the first failing
// row aborts the batch, identified by position and description.
func (s *Service) LogBatch(inputs []ManualEntry) ([]model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	for i, in := range inputs {
		if verr := validateManual(data, in); verr != nil {
			return nil, &ValidationError{
				Field:  verr.Field,
				Reason: fmt.Sprintf("entry %d (%q): %s", i+1, in.Description, verr.Reason),
			}
		}
	}

	created := make([]model.TimeEntry, 0, len(inputs))
	for _, in := range inputs {
		e := newManualEntry(in)
		data.TimeEntries = append(data.TimeEntries, e)
		created = append(created, e)
	}

	if err := s.save(data); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateEntry applies a patch to the entry. When the patched entry ends
// up with both times set, end must still be strictly after start.
// Archiving a running entry stops it first; an archived entry can never
// still be running.
func (s *Service) UpdateEntry(id string, upd model.EntryUpdate) (*model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := entryIndex(data, id)
	if idx < 0 {
		return nil, &NotFoundError{Kind: "time entry", ID: id}
	}

	e := data.TimeEntries[idx]
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.ProjectID != nil {
		if _, ok := data.ProjectByID(*upd.ProjectID); !ok {
			return nil, &ValidationError{Field: "projectId", Reason: fmt.Sprintf("project %s does not exist", *upd.ProjectID)}
		}
		e.ProjectID = *upd.ProjectID
	}
	if upd.StartTime != nil {
		e.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		end := *upd.EndTime
		e.EndTime = &end
	}
	if upd.Archived != nil {
		if *upd.Archived && e.IsRunning() {
			end := s.now()
			e.EndTime = &end
		}
		e.IsArchived = *upd.Archived
	}

	if e.EndTime != nil && !e.EndTime.After(e.StartTime) {
		return nil, &ValidationError{Field: "endTime", Reason: "must be after startTime"}
	}

	data.TimeEntries[idx] = e

	if err := s.save(data); err != nil {
		return nil, err
	}

	return &e, nil
}

// DeleteEntry permanently removes one entry. No cascading.
func (s *Service) DeleteEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	idx := entryIndex(data, id)
	if idx < 0 {
		return &NotFoundError{Kind: "time entry", ID: id}
	}

	data.TimeEntries = append(data.TimeEntries[:idx], data.TimeEntries[idx+1:]...)

	return s.save(data)
}

func entryIndex(data *model.AppData, id string) int {
	for i, e := range data.TimeEntries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func validateManual(data *model.AppData, in ManualEntry) *ValidationError {
	if in.ProjectID == "" {
		return &ValidationError{Field: "projectId", Reason: "is required"}
	}
	if _, ok := data.ProjectByID(in.ProjectID); !ok {
		return &ValidationError{Field: "projectId", Reason: fmt.Sprintf("project %s does not exist", in.ProjectID)}
	}
	if in.StartTime.IsZero() {
		return &ValidationError{Field: "startTime", Reason: "is required"}
	}
	if in.EndTime.IsZero() {
		return &ValidationError{Field: "endTime", Reason: "is required"}
	}
	if !in.EndTime.After(in.StartTime) {
		return &ValidationError{Field: "endTime", Reason: "must be after startTime"}
	}
	return nil
}

func newManualEntry(in ManualEntry) model.TimeEntry {
	end := in.EndTime
	return model.TimeEntry{
		ID:          model.NewID(),
		ProjectID:   in.ProjectID,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     &end,
	}
}
