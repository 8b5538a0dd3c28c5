package cmd

import (
	"strings"
	"testing"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/service"
	"github.com/jgrefe/tempus/internal/storage"
)

func resetEntryFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		entryDescriptionFlag = ""
		entryProjectFlag = ""
		entryStartFlag = ""
		entryEndFlag = ""
		for _, name := range []string{"description", "project", "start", "end"} {
			if f := entryEditCmd.Flags().Lookup(name); f != nil {
				f.Changed = false
				_ = f.Value.Set(f.DefValue)
			}
		}
	})
}

func seedEntry(t *testing.T, env *testEnv, description string) string {
	t.Helper()

	projectID := seedProject(t, env, "Acme", "Website")
	svc := service.New(storage.NewFileStore(env.dataPath))
	e, err := svc.Start(projectID, description)
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	if _, err := svc.Stop(e.ID); err != nil {
		t.Fatalf("failed to stop seeded entry: %v", err)
	}
	return e.ID
}

func TestEditEntry_Description(t *testing.T) {
	env := setupCmdTest(t)
	resetEntryFlags(t)
	id := seedEntry(t, env, "draft")

	if err := entryEditCmd.Flags().Set("description", "final copy"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	editEntry(entryEditCmd, id)

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Updated: ") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	svc := service.New(storage.NewFileStore(env.dataPath))
	data, err := svc.Data()
	if err != nil {
		t.Fatalf("failed to read data: %v", err)
	}
	if data.TimeEntries[0].Description != "final copy" {
		t.Errorf("description = %q, want %q", data.TimeEntries[0].Description, "final copy")
	}
}

func TestEditEntry_ClearDescription(t *testing.T) {
	env := setupCmdTest(t)
	resetEntryFlags(t)
	id := seedEntry(t, env, "draft")

	if err := entryEditCmd.Flags().Set("description", ""); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	editEntry(entryEditCmd, id)

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}

	svc := service.New(storage.NewFileStore(env.dataPath))
	data, err := svc.Data()
	if err != nil {
		t.Fatalf("failed to read data: %v", err)
	}
	if data.TimeEntries[0].Description != "" {
		t.Errorf("description = %q, want empty", data.TimeEntries[0].Description)
	}
}

func TestEditEntry_NothingToChange(t *testing.T) {
	env := setupCmdTest(t)
	resetEntryFlags(t)
	id := seedEntry(t, env, "draft")

	editEntry(entryEditCmd, id)

	if !env.exited {
		t.Fatal("expected the command to fail")
	}
	if !strings.Contains(env.stderr.String(), "Nothing to change") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}

func TestEditEntry_InvalidStart(t *testing.T) {
	env := setupCmdTest(t)
	resetEntryFlags(t)
	id := seedEntry(t, env, "draft")

	entryStartFlag = "not a time"
	editEntry(entryEditCmd, id)

	if !env.exited {
		t.Fatal("expected the command to fail")
	}
	if !strings.Contains(env.stderr.String(), "Invalid --start") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}

func TestArchiveEntry(t *testing.T) {
	env := setupCmdTest(t)
	id := seedEntry(t, env, "old work")

	archived := true
	patchEntry(id, model.EntryUpdate{Archived: &archived}, "Archived")

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Archived: ") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	svc := service.New(storage.NewFileStore(env.dataPath))
	data, err := svc.Data()
	if err != nil {
		t.Fatalf("failed to read data: %v", err)
	}
	if !data.TimeEntries[0].IsArchived {
		t.Error("expected the entry to be archived")
	}
}

func TestDeleteEntry(t *testing.T) {
	env := setupCmdTest(t)
	id := seedEntry(t, env, "mistake")

	removeEntry(id)

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Deleted entry.") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	svc := service.New(storage.NewFileStore(env.dataPath))
	data, err := svc.Data()
	if err != nil {
		t.Fatalf("failed to read data: %v", err)
	}
	if len(data.TimeEntries) != 0 {
		t.Errorf("expected no entries, got %d", len(data.TimeEntries))
	}
}

func TestDeleteEntry_UnknownID(t *testing.T) {
	env := setupCmdTest(t)

	removeEntry("nope")

	if !env.exited {
		t.Fatal("expected the command to fail")
	}
	if !strings.Contains(env.stderr.String(), "Failed to delete entry") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}
