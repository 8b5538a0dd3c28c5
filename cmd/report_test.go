package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/service"
	"github.com/jgrefe/tempus/internal/storage"
	"github.com/jgrefe/tempus/internal/timeutil"
)

func resetReportFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		reportWeekFlag = false
		reportMonthFlag = false
		reportFromFlag = ""
		reportToFlag = ""
	})
}

// seedTimedEntry logs a completed entry of the given length, anchored
// just after the start of the current week so it always falls inside
// the default report period.
func seedTimedEntry(t *testing.T, env *testEnv, projectID, desc string, length time.Duration) {
	t.Helper()

	svc := service.New(storage.NewFileStore(env.dataPath))
	start := timeutil.StartOfWeek(time.Now(), "monday").Add(time.Minute)
	_, err := svc.LogManual(service.ManualEntry{
		ProjectID:   projectID,
		Description: desc,
		StartTime:   start,
		EndTime:     start.Add(length),
	})
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
}

func TestRunReport_Week(t *testing.T) {
	env := setupCmdTest(t)
	resetReportFlags(t)
	projectID := seedProject(t, env, "Acme", "Website")
	seedTimedEntry(t, env, projectID, "mockups", 2*time.Hour)

	runReport()

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}
	out := env.stdout.String()
	if !strings.Contains(out, "Report for this week") {
		t.Errorf("expected the week header, got: %s", out)
	}
	if !strings.Contains(out, "By project:") || !strings.Contains(out, "Website") {
		t.Errorf("expected a project breakdown, got: %s", out)
	}
	if !strings.Contains(out, "Total: 2h 0m") {
		t.Errorf("expected the total, got: %s", out)
	}
}

func TestRunReport_ExcludesRunningAndArchived(t *testing.T) {
	env := setupCmdTest(t)
	resetReportFlags(t)
	projectID := seedProject(t, env, "Acme", "Website")
	seedTimedEntry(t, env, projectID, "counted", time.Hour)

	svc := service.New(storage.NewFileStore(env.dataPath))
	end := time.Now()
	e, err := svc.LogManual(service.ManualEntry{
		ProjectID:   projectID,
		Description: "archived work",
		StartTime:   end.Add(-time.Hour),
		EndTime:     end,
	})
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	archived := true
	if _, err := svc.UpdateEntry(e.ID, model.EntryUpdate{Archived: &archived}); err != nil {
		t.Fatalf("failed to archive entry: %v", err)
	}
	if _, err := svc.Start(projectID, "still running"); err != nil {
		t.Fatalf("failed to start entry: %v", err)
	}

	runReport()

	if !strings.Contains(env.stdout.String(), "Total: 1h 0m") {
		t.Errorf("expected only the completed entry counted, got: %s", env.stdout.String())
	}
}

func TestRunReport_CustomRange(t *testing.T) {
	env := setupCmdTest(t)
	resetReportFlags(t)
	seedProject(t, env, "Acme", "Website")

	reportFromFlag = "2024-01-01"
	reportToFlag = "2024-01-03"
	runReport()

	out := env.stdout.String()
	if !strings.Contains(out, "Report for 2024-01-01 to 2024-01-03") {
		t.Errorf("expected the range header, got: %s", out)
	}
	// Three zero-filled days.
	if got := strings.Count(out, "0.0h"); got != 3 {
		t.Errorf("expected 3 zero days, got %d in: %s", got, out)
	}
}

func TestRunReport_MissingFrom(t *testing.T) {
	env := setupCmdTest(t)
	resetReportFlags(t)

	reportToFlag = "2024-01-31"
	runReport()

	if !env.exited {
		t.Fatal("expected the command to fail")
	}
	if !strings.Contains(env.stderr.String(), "Missing --from") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}
