package cmd

import (
	"strings"
	"testing"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/service"
	"github.com/jgrefe/tempus/internal/storage"
)

func TestAddAndListClients(t *testing.T) {
	env := setupCmdTest(t)

	addClient("Acme Industries")

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Added client: Acme Industries") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	env.stdout.Reset()
	listClients()

	out := env.stdout.String()
	if !strings.Contains(out, "Acme Industries") || !strings.Contains(out, "id: ") {
		t.Errorf("unexpected listing: %s", out)
	}
}

func TestListClients_Empty(t *testing.T) {
	env := setupCmdTest(t)

	listClients()

	if !strings.Contains(env.stdout.String(), "No clients found.") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestAddClient_EmptyNameFails(t *testing.T) {
	env := setupCmdTest(t)

	addClient("   ")

	if !env.exited {
		t.Fatal("expected the command to fail")
	}
	if !strings.Contains(env.stderr.String(), "Failed to add client") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}

func TestArchiveClient_HiddenFromDefaultListing(t *testing.T) {
	env := setupCmdTest(t)

	svc := service.New(storage.NewFileStore(env.dataPath))
	c, err := svc.AddClient("Dormant Co")
	if err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}

	archived := true
	updateClient(c.ID, model.ClientUpdate{Archived: &archived}, "Archived")
	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}

	env.stdout.Reset()
	listClients()
	if !strings.Contains(env.stdout.String(), "No clients found.") {
		t.Errorf("expected the archived client to be hidden, got: %s", env.stdout.String())
	}

	env.stdout.Reset()
	clientArchivedFlag = true
	defer func() { clientArchivedFlag = false }()
	listClients()
	if !strings.Contains(env.stdout.String(), "Dormant Co [archived]") {
		t.Errorf("expected the archived marker, got: %s", env.stdout.String())
	}
}

func TestRenameClient(t *testing.T) {
	env := setupCmdTest(t)

	svc := service.New(storage.NewFileStore(env.dataPath))
	c, err := svc.AddClient("Old Name")
	if err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}

	name := "New Name"
	updateClient(c.ID, model.ClientUpdate{Name: &name}, "Renamed")

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Renamed client: New Name") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestDeleteClient_Cascades(t *testing.T) {
	env := setupCmdTest(t)
	seedProject(t, env, "Doomed Co", "Doomed Project")

	svc := service.New(storage.NewFileStore(env.dataPath))
	clients, err := svc.Clients(false)
	if err != nil || len(clients) != 1 {
		t.Fatalf("failed to read seeded client: %v", err)
	}

	deleteClient(clients[0].ID)

	if env.exited {
		t.Fatalf("unexpected failure: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Deleted client") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	data, err := svc.Data()
	if err != nil {
		t.Fatalf("failed to read data: %v", err)
	}
	if len(data.Clients) != 0 || len(data.Projects) != 0 {
		t.Errorf("expected an empty workspace after the cascade, got %+v", data)
	}
}

func TestDeleteClient_UnknownID(t *testing.T) {
	env := setupCmdTest(t)

	deleteClient("nope")

	if !env.exited {
		t.Fatal("expected the command to fail")
	}
	if !strings.Contains(env.stderr.String(), "Failed to delete client") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}
