package cmd

import (
	"strings"
	"testing"
)

func TestStopEntry(t *testing.T) {
	env := setupCmdTest(t)
	seedProject(t, env, "Acme", "Rollout")

	startEntry("Rollout", "task")
	env.stdout.Reset()

	stopEntry()

	out := env.stdout.String()
	if !strings.Contains(out, "Stopped: task") {
		t.Errorf("unexpected output: %s", out)
	}
	if env.exited {
		t.Errorf("unexpected failure: %s", env.stderr.String())
	}
}

func TestStopEntry_NothingRunning(t *testing.T) {
	env := setupCmdTest(t)
	seedProject(t, env, "Acme", "Rollout")

	stopEntry()

	if env.exited {
		t.Fatalf("expected a clean exit, got: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "No entry is running.") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestShowStatus(t *testing.T) {
	env := setupCmdTest(t)
	seedProject(t, env, "Acme", "Rollout")

	startEntry("Rollout", "writing docs")
	env.stdout.Reset()

	showStatus()

	out := env.stdout.String()
	for _, expected := range []string{
		"Running: writing docs",
		"Project: Rollout (Acme)",
		"Started:",
		"Elapsed:",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected %q in output, got: %s", expected, out)
		}
	}
}

func TestShowStatus_Idle(t *testing.T) {
	env := setupCmdTest(t)
	seedProject(t, env, "Acme", "Rollout")

	showStatus()

	if !strings.Contains(env.stdout.String(), "No entry is running.") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}
