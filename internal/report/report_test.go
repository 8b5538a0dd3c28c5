package report

import (
	"testing"
	"time"

	"github.com/jgrefe/tempus/internal/model"
)

func entry(projectID string, start time.Time, d time.Duration) model.TimeEntry {
	end := start.Add(d)
	return model.TimeEntry{
		ID:        model.NewID(),
		ProjectID: projectID,
		StartTime: start,
		EndTime:   &end,
	}
}

func runningEntry(projectID string, start time.Time) model.TimeEntry {
	return model.TimeEntry{ID: model.NewID(), ProjectID: projectID, StartTime: start}
}

func TestSumDuration(t *testing.T) {
	base := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)

	t.Run("empty is zero", func(t *testing.T) {
		if got := SumDuration(nil); got != 0 {
			t.Errorf("SumDuration(nil) = %v, expected 0", got)
		}
	})

	t.Run("sums completed entries", func(t *testing.T) {
		entries := []model.TimeEntry{
			entry("p1", base, time.Hour),
			entry("p1", base.Add(2*time.Hour), 30*time.Minute),
		}
		if got := SumDuration(entries); got != 90*time.Minute {
			t.Errorf("SumDuration = %v, expected 90m", got)
		}
	})

	t.Run("running entries contribute nothing", func(t *testing.T) {
		entries := []model.TimeEntry{
			entry("p1", base, time.Hour),
			runningEntry("p1", base),
		}
		if got := SumDuration(entries); got != time.Hour {
			t.Errorf("SumDuration = %v, expected 1h", got)
		}
	})

	t.Run("negative spans clamp to zero", func(t *testing.T) {
		entries := []model.TimeEntry{
			entry("p1", base, -time.Hour),
			entry("p1", base, 90*time.Minute),
		}
		// 5,400,000 ms of real work; the inverted entry must not
		// subtract from it.
		if got := SumDuration(entries); got != 90*time.Minute {
			t.Errorf("SumDuration = %v, expected 90m", got)
		}
	})

	t.Run("order does not matter", func(t *testing.T) {
		a := entry("p1", base, time.Hour)
		b := entry("p2", base, 15*time.Minute)
		if SumDuration([]model.TimeEntry{a, b}) != SumDuration([]model.TimeEntry{b, a}) {
			t.Error("expected SumDuration to be order-independent")
		}
	})
}

func TestGroupByDay(t *testing.T) {
	day1 := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	entries := []model.TimeEntry{
		entry("p1", day1, time.Hour),
		entry("p1", day1.Add(3*time.Hour), 30*time.Minute),
		entry("p2", day2, 2*time.Hour),
		runningEntry("p1", day2),
	}

	byDay := GroupByDay(entries)
	if len(byDay) != 2 {
		t.Fatalf("expected 2 days, got %d", len(byDay))
	}
	if byDay["2026-03-09"] != 90*time.Minute {
		t.Errorf("day 1 = %v, expected 90m", byDay["2026-03-09"])
	}
	if byDay["2026-03-10"] != 2*time.Hour {
		t.Errorf("day 2 = %v, expected 2h", byDay["2026-03-10"])
	}
}

func TestGroupByProject(t *testing.T) {
	base := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)

	entries := []model.TimeEntry{
		entry("p1", base, time.Hour),
		entry("p1", base.Add(time.Hour), time.Hour),
		entry("p2", base, 15*time.Minute),
		runningEntry("p2", base),
	}

	byProject := GroupByProject(entries)
	if byProject["p1"] != 2*time.Hour {
		t.Errorf("p1 = %v, expected 2h", byProject["p1"])
	}
	if byProject["p2"] != 15*time.Minute {
		t.Errorf("p2 = %v, expected 15m", byProject["p2"])
	}
}

func TestProjectBreakdown(t *testing.T) {
	base := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)

	projects := map[string]model.Project{
		"p1": {ID: "p1", Name: "Rollout", ClientID: "c1"},
		"p2": {ID: "p2", Name: "Maintenance", ClientID: "c-gone"},
	}
	clients := map[string]model.Client{
		"c1": {ID: "c1", Name: "Acme"},
	}

	entries := []model.TimeEntry{
		entry("p1", base, time.Hour),
		entry("p1", base.Add(time.Hour), time.Hour),
		entry("p2", base, 30*time.Minute),
		entry("p-gone", base, 3*time.Hour),
	}

	rows := ProjectBreakdown(entries, projects, clients)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Sorted by duration descending.
	if rows[0].ProjectID != "p-gone" || rows[1].ProjectID != "p1" || rows[2].ProjectID != "p2" {
		t.Errorf("unexpected order: %s, %s, %s", rows[0].ProjectID, rows[1].ProjectID, rows[2].ProjectID)
	}

	// Fully resolved row.
	if rows[1].ProjectName != "Rollout" || rows[1].ClientName != "Acme" {
		t.Errorf("expected resolved names, got %q / %q", rows[1].ProjectName, rows[1].ClientName)
	}
	if rows[1].Duration != 2*time.Hour || rows[1].EntryCount != 2 {
		t.Errorf("expected 2h over 2 entries, got %v over %d", rows[1].Duration, rows[1].EntryCount)
	}

	// Dangling project reference.
	if rows[0].ProjectName != UnknownProject || rows[0].ClientName != UnknownClient {
		t.Errorf("expected unknown placeholders, got %q / %q", rows[0].ProjectName, rows[0].ClientName)
	}

	// Known project, dangling client reference.
	if rows[2].ProjectName != "Maintenance" || rows[2].ClientName != UnknownClient {
		t.Errorf("expected known project with unknown client, got %q / %q", rows[2].ProjectName, rows[2].ClientName)
	}
}

func TestDailySeries(t *testing.T) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local)

	entries := []model.TimeEntry{
		entry("p1", start.Add(9*time.Hour), 2*time.Hour),
		entry("p1", start.AddDate(0, 0, 2).Add(10*time.Hour), 30*time.Minute),
	}

	series, err := DailySeries(entries, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Closed interval: 5 elements, zero-filled gaps included.
	if len(series) != 5 {
		t.Fatalf("expected 5 days, got %d", len(series))
	}
	if series[0].Hours != 2.0 {
		t.Errorf("day 0 = %v, expected 2.0", series[0].Hours)
	}
	if series[1].Hours != 0 {
		t.Errorf("day 1 = %v, expected 0", series[1].Hours)
	}
	if series[2].Hours != 0.5 {
		t.Errorf("day 2 = %v, expected 0.5", series[2].Hours)
	}
	if series[4].Hours != 0 {
		t.Errorf("day 4 = %v, expected 0", series[4].Hours)
	}

	for i, day := range series {
		expected := start.AddDate(0, 0, i)
		if !day.Day.Equal(expected) {
			t.Errorf("day %d = %v, expected %v", i, day.Day, expected)
		}
	}
}

func TestDailySeries_SingleDay(t *testing.T) {
	day := time.Date(2026, 3, 9, 15, 30, 0, 0, time.Local)

	series, err := DailySeries(nil, day, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 {
		t.Errorf("expected 1 element for a same-day interval, got %d", len(series))
	}
}

func TestDailySeries_MalformedInterval(t *testing.T) {
	start := time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

	if _, err := DailySeries(nil, start, end); err == nil {
		t.Error("expected an error when start is after end")
	}
}
