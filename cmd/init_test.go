package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jgrefe/tempus/internal/config"
	"github.com/jgrefe/tempus/internal/service"
	"github.com/jgrefe/tempus/internal/storage"
)

func resetInitFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		initSeedFlag = false
		initDefaultFlag = false
	})
}

func TestInit_CreatesEmptyFile(t *testing.T) {
	env := setupCmdTest(t)
	resetInitFlags(t)

	path := filepath.Join(t.TempDir(), "work.json")
	initDataFile(path)

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Created "+path+" with 0 clients, 0 projects, 0 entries") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	svc := service.New(storage.NewFileStore(path))
	data, err := svc.Data()
	if err != nil {
		t.Fatalf("failed to read created file: %v", err)
	}
	if len(data.Clients) != 0 || len(data.Projects) != 0 || len(data.TimeEntries) != 0 {
		t.Errorf("expected an empty document, got %+v", data)
	}
}

func TestInit_Seed(t *testing.T) {
	env := setupCmdTest(t)
	resetInitFlags(t)

	path := filepath.Join(t.TempDir(), "demo.json")
	initSeedFlag = true
	initDataFile(path)

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}

	svc := service.New(storage.NewFileStore(path))
	data, err := svc.Data()
	if err != nil {
		t.Fatalf("failed to read created file: %v", err)
	}
	if len(data.Clients) == 0 || len(data.Projects) == 0 || len(data.TimeEntries) == 0 {
		t.Error("expected the seeded file to contain sample data")
	}
}

func TestInit_DefaultUpdatesConfig(t *testing.T) {
	env := setupCmdTest(t)
	resetInitFlags(t)

	path := filepath.Join(t.TempDir(), "work.json")
	initDefaultFlag = true
	initDataFile(path)

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}

	cfg, err := config.LoadOrDefault(env.confPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DefaultDataFile != path {
		t.Errorf("DefaultDataFile = %q, want %q", cfg.DefaultDataFile, path)
	}
	found := false
	for _, recent := range cfg.RecentFiles {
		if recent == path {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s in the recent files, got %v", path, cfg.RecentFiles)
	}
}

func TestInit_ExistingFileFails(t *testing.T) {
	env := setupCmdTest(t)
	resetInitFlags(t)

	path := filepath.Join(t.TempDir(), "work.json")
	initDataFile(path)
	env.stdout.Reset()

	initDataFile(path)

	if !env.exited {
		t.Fatal("expected the command to fail")
	}
	if !strings.Contains(env.stderr.String(), path+" already exists") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}
