package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jgrefe/tempus/internal/model"
)

// FileStore persists the document as a single pretty-printed JSON file.
// Timestamps serialize as ISO-8601 (RFC 3339) strings with sub-second
// precision preserved, so save(load()) round-trips exactly.
type FileStore struct {
	path string
}

// NewFileStore creates a store session for the given file path.
// The file is not touched until Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the full document. A missing file yields an
// empty workspace so that first-run behaves as a fresh dataset. A file
// that exists but lacks any of the three collections is rejected with
// ErrInvalidDataFile rather than silently repaired.
func (s *FileStore) Load() (*model.AppData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewAppData(), nil
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	var data model.AppData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataFile, err)
	}

	if !data.Valid() {
		return nil, fmt.Errorf("%w: clients, projects and timeEntries must all be present", ErrInvalidDataFile)
	}

	return &data, nil
}

// Save serializes the full document, overwriting prior content. The
// write goes to a temp file first and is renamed into place so a crash
// mid-write cannot leave a truncated data file. Existing content is
// rotated into numbered backups before the overwrite.
func (s *FileStore) Save(data *model.AppData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding data file: %w", err)
	}

	if err := CreateBackup(s.path); err != nil {
		return fmt.Errorf("rotating backups: %w", err)
	}

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, append(content, '\n'), 0644); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("writing data file: %w", err)
	}

	return nil
}

// Close releases the session. File stores hold no open handles.
func (s *FileStore) Close() error {
	return nil
}
