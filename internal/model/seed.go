package model

import "time"

// Seed returns a small sample dataset for first-run demos: two active
// clients, one archived, four projects, and a handful of entries
// including one still running. Times are anchored on the given now.
func Seed(now time.Time) *AppData {
	yesterday := now.Add(-24 * time.Hour)

	innovate := Client{ID: NewID(), Name: "Innovate Corp"}
	future := Client{ID: NewID(), Name: "Future Systems"}
	archived := Client{ID: NewID(), Name: "Archived LLC", IsArchived: true}

	phoenix := Project{ID: NewID(), ClientID: innovate.ID, Name: "Project Phoenix"}
	redesign := Project{ID: NewID(), ClientID: innovate.ID, Name: "Website Redesign"}
	ai := Project{ID: NewID(), ClientID: future.ID, Name: "AI Integration"}
	initiative := Project{ID: NewID(), ClientID: future.ID, Name: "Archived Initiative", IsArchived: true}

	setupEnd := now.Add(-1 * time.Hour)
	mockupsEnd := yesterday.Add(3 * time.Hour)
	archivedEnd := now.Add(-47 * time.Hour)

	return &AppData{
		Clients:  []Client{innovate, future, archived},
		Projects: []Project{phoenix, redesign, ai, initiative},
		TimeEntries: []TimeEntry{
			{
				ID:          NewID(),
				ProjectID:   phoenix.ID,
				Description: "Initial project setup and configuration.",
				StartTime:   now.Add(-2 * time.Hour),
				EndTime:     &setupEnd,
			},
			{
				ID:          NewID(),
				ProjectID:   redesign.ID,
				Description: "Design mockups for the new homepage.",
				StartTime:   yesterday,
				EndTime:     &mockupsEnd,
			},
			{
				ID:          NewID(),
				ProjectID:   ai.ID,
				Description: "Researching AI models.",
				StartTime:   now.Add(-4 * time.Hour),
				EndTime:     nil,
			},
			{
				ID:          NewID(),
				ProjectID:   initiative.ID,
				Description: "Archived work.",
				StartTime:   now.Add(-48 * time.Hour),
				EndTime:     &archivedEnd,
				IsArchived:  true,
			},
		},
	}
}
