package service

import (
	"strings"

	"github.com/jgrefe/tempus/internal/model"
)

// Clients returns clients, skipping archived ones unless asked for.
func (s *Service) Clients(includeArchived bool) ([]model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	clients := make([]model.Client, 0, len(data.Clients))
	for _, c := range data.Clients {
		if includeArchived || !c.IsArchived {
			clients = append(clients, c)
		}
	}
	return clients, nil
}

// AddClient creates a new client.
func (s *Service) AddClient(name string) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	c := model.Client{ID: model.NewID(), Name: name}
	data.Clients = append(data.Clients, c)

	if err := s.save(data); err != nil {
		return nil, err
	}

	return &c, nil
}

// UpdateClient applies a rename and/or archive flag change.
func (s *Service) UpdateClient(id string, upd model.ClientUpdate) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range data.Clients {
		if data.Clients[i].ID != id {
			continue
		}
		if upd.Name != nil {
			name := strings.TrimSpace(*upd.Name)
			if name == "" {
				return nil, &ValidationError{Field: "name", Reason: "is required"}
			}
			data.Clients[i].Name = name
		}
		if upd.Archived != nil {
			data.Clients[i].IsArchived = *upd.Archived
		}
		c := data.Clients[i]
		if err := s.save(data); err != nil {
			return nil, err
		}
		return &c, nil
	}

	return nil, &NotFoundError{Kind: "client", ID: id}
}

// DeleteClient permanently removes a client, its projects, and every
// time entry logged against those projects. The cascade is collected
// first and persisted in one save so an interruption can never leave
// orphaned projects or entries behind.
func (s *Service) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := data.ClientByID(id); !ok {
		return &NotFoundError{Kind: "client", ID: id}
	}

	// Collect affected project ids, then purge in one pass.
	affected := make(map[string]bool)
	for _, p := range data.Projects {
		if p.ClientID == id {
			affected[p.ID] = true
		}
	}

	clients := data.Clients[:0]
	for _, c := range data.Clients {
		if c.ID != id {
			clients = append(clients, c)
		}
	}
	data.Clients = clients

	projects := data.Projects[:0]
	for _, p := range data.Projects {
		if !affected[p.ID] {
			projects = append(projects, p)
		}
	}
	data.Projects = projects

	entries := data.TimeEntries[:0]
	for _, e := range data.TimeEntries {
		if !affected[e.ProjectID] {
			entries = append(entries, e)
		}
	}
	data.TimeEntries = entries

	return s.save(data)
}
