package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jgrefe/tempus/internal/storage"
)

// testClock is a controllable clock for deterministic timestamps.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// newTestService creates a service over a file store in a temp dir,
// with the clock frozen at a known instant.
func newTestService(t *testing.T) (*Service, *testClock) {
	t.Helper()

	clock := &testClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)}
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	return NewWithClock(store, clock.Now), clock
}

// fixture seeds a client and a project and returns their ids.
func fixture(t *testing.T, svc *Service) (clientID, projectID string) {
	t.Helper()

	c, err := svc.AddClient("Acme")
	if err != nil {
		t.Fatalf("failed to add client: %v", err)
	}
	p, err := svc.AddProject("Rollout", c.ID)
	if err != nil {
		t.Fatalf("failed to add project: %v", err)
	}
	return c.ID, p.ID
}

func TestService_DataEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	data, err := svc.Data()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !data.Valid() {
		t.Error("expected a valid empty workspace")
	}
	if len(data.Clients) != 0 {
		t.Errorf("expected no clients, got %d", len(data.Clients))
	}
}

func TestService_Seed(t *testing.T) {
	svc, _ := newTestService(t)

	seeded, err := svc.Seed()
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if len(seeded.Clients) == 0 || len(seeded.Projects) == 0 || len(seeded.TimeEntries) == 0 {
		t.Fatal("expected the seed dataset to be populated")
	}

	// The seed dataset includes a running entry, visible through the
	// service immediately after seeding.
	active, err := svc.ActiveEntry()
	if err != nil {
		t.Fatalf("active entry failed: %v", err)
	}
	if active == nil {
		t.Fatal("expected the seed dataset to contain a running entry")
	}
}

func TestService_StorageErrorOnLoad(t *testing.T) {
	// A directory at the data path makes every read fail.
	dir := t.TempDir()
	svc := New(storage.NewFileStore(dir))

	_, err := svc.Data()
	if err == nil {
		t.Fatal("expected an error")
	}

	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %T: %v", err, err)
	}
	if serr.Op != "load" {
		t.Errorf("expected op load, got %q", serr.Op)
	}
	if serr.Unwrap() == nil {
		t.Error("expected the underlying error to be preserved")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"validation",
			&ValidationError{Field: "endTime", Reason: "must be after startTime"},
			"invalid endTime: must be after startTime",
		},
		{
			"not found",
			&NotFoundError{Kind: "client", ID: "c1"},
			"client c1 not found",
		},
		{
			"already stopped",
			&AlreadyStoppedError{ID: "e1"},
			"time entry e1 is already stopped",
		},
		{
			"invariant violation",
			&InvariantViolationError{Count: 2},
			"data file corrupted: 2 entries are running, expected at most one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
