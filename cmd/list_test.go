package cmd

import (
	"strings"
	"testing"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/service"
	"github.com/jgrefe/tempus/internal/storage"
)

func resetListFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		listArchivedFlag = false
		listSearchFlag = ""
		listProjectFlag = ""
		listClientFlag = ""
		listFromFlag = ""
		listToFlag = ""
	})
}

func TestListEntries_Empty(t *testing.T) {
	env := setupCmdTest(t)

	listEntries()

	if !strings.Contains(env.stdout.String(), "No entries found.") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestListEntries_ShowsTotal(t *testing.T) {
	env := setupCmdTest(t)
	projectID := seedProject(t, env, "Acme", "Website")

	svc := service.New(storage.NewFileStore(env.dataPath))
	e, err := svc.Start(projectID, "mockups")
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	if _, err := svc.Stop(e.ID); err != nil {
		t.Fatalf("failed to stop entry: %v", err)
	}

	listEntries()

	out := env.stdout.String()
	if !strings.Contains(out, "Website / Acme") {
		t.Errorf("expected the project and client names, got: %s", out)
	}
	if !strings.Contains(out, "Total: ") || !strings.Contains(out, "over 1 entries") {
		t.Errorf("expected a total line, got: %s", out)
	}
}

func TestListEntries_SearchFilter(t *testing.T) {
	env := setupCmdTest(t)
	resetListFlags(t)
	projectID := seedProject(t, env, "Acme", "Website")

	svc := service.New(storage.NewFileStore(env.dataPath))
	for _, desc := range []string{"design mockups", "standup call"} {
		e, err := svc.Start(projectID, desc)
		if err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
		if _, err := svc.Stop(e.ID); err != nil {
			t.Fatalf("failed to stop entry: %v", err)
		}
	}

	listSearchFlag = "MOCKUPS"
	listEntries()

	out := env.stdout.String()
	if !strings.Contains(out, "design mockups") {
		t.Errorf("expected the matching entry, got: %s", out)
	}
	if strings.Contains(out, "standup call") {
		t.Errorf("expected the other entry to be filtered out, got: %s", out)
	}
}

func TestListEntries_ArchivedHiddenByDefault(t *testing.T) {
	env := setupCmdTest(t)
	resetListFlags(t)
	id := seedEntry(t, env, "old work")

	svc := service.New(storage.NewFileStore(env.dataPath))
	archived := true
	if _, err := svc.UpdateEntry(id, model.EntryUpdate{Archived: &archived}); err != nil {
		t.Fatalf("failed to archive entry: %v", err)
	}

	listEntries()
	if !strings.Contains(env.stdout.String(), "No entries found.") {
		t.Errorf("expected the archived entry to be hidden, got: %s", env.stdout.String())
	}

	env.stdout.Reset()
	listArchivedFlag = true
	listEntries()
	if !strings.Contains(env.stdout.String(), "[archived]") {
		t.Errorf("expected the archived marker, got: %s", env.stdout.String())
	}
}

func TestListEntries_InvalidDateRange(t *testing.T) {
	env := setupCmdTest(t)
	resetListFlags(t)

	listFromFlag = "bogus"
	listEntries()

	if !env.exited {
		t.Fatal("expected the command to fail")
	}
	if !strings.Contains(env.stderr.String(), "Invalid date range") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}
