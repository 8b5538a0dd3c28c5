package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jgrefe/tempus/internal/model"
)

// SQLiteStore persists the document in a SQLite database. The contract
// is the same as the file store: Load materializes the full document,
// Save replaces it wholesale inside one transaction. Timestamps are
// stored as RFC 3339 UTC strings with nanosecond precision.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) a SQLite-backed store at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	store := &SQLiteStore{db: db, path: path}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			is_archived INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			client_id TEXT NOT NULL,
			is_archived INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS time_entries (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			description TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT,
			is_archived INTEGER NOT NULL DEFAULT 0
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}

	return nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Load reads the full document. A freshly created database yields an
// empty workspace.
func (s *SQLiteStore) Load() (*model.AppData, error) {
	data := model.NewAppData()

	rows, err := s.db.Query(`SELECT id, name, is_archived FROM clients ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.IsArchived); err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		data.Clients = append(data.Clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}

	rows, err = s.db.Query(`SELECT id, name, client_id, is_archived FROM projects ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.ClientID, &p.IsArchived); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		data.Projects = append(data.Projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}

	rows, err = s.db.Query(`SELECT id, project_id, description, start_time, end_time, is_archived FROM time_entries ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying time entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e model.TimeEntry
		var startStr string
		var endStr sql.NullString
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Description, &startStr, &endStr, &e.IsArchived); err != nil {
			return nil, fmt.Errorf("scanning time entry: %w", err)
		}
		e.StartTime, err = time.Parse(time.RFC3339Nano, startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing start time of entry %s: %w", e.ID, err)
		}
		if endStr.Valid {
			end, err := time.Parse(time.RFC3339Nano, endStr.String)
			if err != nil {
				return nil, fmt.Errorf("parsing end time of entry %s: %w", e.ID, err)
			}
			e.EndTime = &end
		}
		data.TimeEntries = append(data.TimeEntries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("querying time entries: %w", err)
	}

	return data, nil
}

// Save replaces the stored document with the given one in a single
// transaction; a failure mid-save leaves the previous document intact.
func (s *SQLiteStore) Save(data *model.AppData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"clients", "projects", "time_entries"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, c := range data.Clients {
		if _, err := tx.Exec(
			`INSERT INTO clients (id, name, is_archived) VALUES (?, ?, ?)`,
			c.ID, c.Name, c.IsArchived,
		); err != nil {
			return fmt.Errorf("inserting client: %w", err)
		}
	}

	for _, p := range data.Projects {
		if _, err := tx.Exec(
			`INSERT INTO projects (id, name, client_id, is_archived) VALUES (?, ?, ?, ?)`,
			p.ID, p.Name, p.ClientID, p.IsArchived,
		); err != nil {
			return fmt.Errorf("inserting project: %w", err)
		}
	}

	for _, e := range data.TimeEntries {
		var end interface{}
		if e.EndTime != nil {
			end = e.EndTime.UTC().Format(time.RFC3339Nano)
		}
		if _, err := tx.Exec(
			`INSERT INTO time_entries (id, project_id, description, start_time, end_time, is_archived) VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.ProjectID, e.Description,
			e.StartTime.UTC().Format(time.RFC3339Nano),
			end, e.IsArchived,
		); err != nil {
			return fmt.Errorf("inserting time entry: %w", err)
		}
	}

	return tx.Commit()
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
