// Package storage persists the AppData document. Two backends share one
// contract: a pretty-printed JSON file and a SQLite database. Either way
// the document is loaded and saved whole; there are no partial writes.
package storage

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "tempus"
	// DataFile is the default data file name
	DataFile = "tempus.json"
)

// ErrInvalidDataFile is returned when a file exists but does not have
// the required document shape (clients, projects, timeEntries arrays).
var ErrInvalidDataFile = errors.New("not a valid tempus data file")

// Store is a session against one backing medium. Load returns the full
// document (an empty workspace when the backing data is missing) and
// Save overwrites it. Close releases the session.
type Store interface {
	Load() (*model.AppData, error)
	Save(data *model.AppData) error
	Path() string
	Close() error
}

// Open opens a session for the given path, picking the backend by
// extension: .db, .sqlite and .sqlite3 open a SQLite store, everything
// else a JSON file store. The path is the explicit session state; there
// is no package-level current file.
func Open(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return NewFileStore(path), nil
	}
}

// DefaultDataPath returns the path to the default data file.
// Uses the user config dir for a cross-platform XDG-compliant location.
// Creates the config directory if it doesn't exist.
func DefaultDataPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, DataFile), nil
}
