package service

import (
	"fmt"
	"strings"

	"github.com/jgrefe/tempus/internal/model"
)

// Projects returns projects, skipping archived ones unless asked for.
func (s *Service) Projects(includeArchived bool) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	projects := make([]model.Project, 0, len(data.Projects))
	for _, p := range data.Projects {
		if includeArchived || !p.IsArchived {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// ProjectsByClient returns the projects belonging to one client.
func (s *Service) ProjectsByClient(clientID string, includeArchived bool) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	var projects []model.Project
	for _, p := range data.Projects {
		if p.ClientID != clientID {
			continue
		}
		if includeArchived || !p.IsArchived {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// AddProject creates a new project under an existing client. A project
// belongs to that client for its lifetime; there is no reassignment.
func (s *Service) AddProject(name, clientID string) (*model.Project, error) {
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

	if _, ok := data.ClientByID(clientID); !ok {
		return nil, &ValidationError{Field: "clientId", Reason: fmt.Sprintf("client %s does not exist", clientID)}
	}

	p := model.Project{ID: model.NewID(), Name: name, ClientID: clientID}
	data.Projects = append(data.Projects, p)

	if err := s.save(data); err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdateProject applies a rename and/or archive flag change.
func (s *Service) UpdateProject(id string, upd model.ProjectUpdate) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range data.Projects {
		if data.Projects[i].ID != id {
			continue
		}
		if upd.Name != nil {
			name := strings.TrimSpace(*upd.Name)
			if name == "" {
				return nil, &ValidationError{Field: "name", Reason: "is required"}
			}
			data.Projects[i].Name = name
		}
		if upd.Archived != nil {
			data.Projects[i].IsArchived = *upd.Archived
		}
		p := data.Projects[i]
		if err := s.save(data); err != nil {
			return nil, err
		}
		return &p, nil
	}

	return nil, &NotFoundError{Kind: "project", ID: id}
}

// DeleteProject permanently removes a project and its time entries in
// one save.
func (s *Service) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := data.ProjectByID(id); !ok {
		return &NotFoundError{Kind: "project", ID: id}
	}

	projects := data.Projects[:0]
	for _, p := range data.Projects {
		if p.ID != id {
			projects = append(projects, p)
		}
	}
	data.Projects = projects

	entries := data.TimeEntries[:0]
	for _, e := range data.TimeEntries {
		if e.ProjectID != id {
			entries = append(entries, e)
		}
	}
	data.TimeEntries = entries

	return s.save(data)
}
