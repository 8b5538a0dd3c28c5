// Package service is the business logic layer over the storage
// document. Every mutating operation is one read-modify-write cycle of
// the whole AppData snapshot, executed under a mutex so overlapping
// calls cannot interleave their read and write phases and lose updates.
package service

import (
	"sync"
	"time"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/storage"
)

// Service owns all mutation of the persisted document.
type Service struct {
	store storage.Store
	mu    sync.Mutex
	now   func() time.Time
}

// New creates a Service over the given store session.
func New(store storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// NewWithClock creates a Service with an injected clock (for tests).
func NewWithClock(store storage.Store, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// Data returns the current full snapshot. Read-only consumers (reports,
// export) work from this; they never reach into the store themselves.
func (s *Service) Data() (*model.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Seed overwrites the store with the first-run sample dataset.
func (s *Service) Seed() (*model.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := model.Seed(s.now())
	if err := s.save(data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Service) load() (*model.AppData, error) {
	data, err := s.store.Load()
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return data, nil
}

func (s *Service) save(data *model.AppData) error {
	if err := s.store.Save(data); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
