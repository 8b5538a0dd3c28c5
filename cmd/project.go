package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/service"
)

// projectCmd represents the project parent command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long: `Manage projects. A project belongs to one client for its lifetime.

  tempus project add <name> --client <id>   Create a project
  tempus project list [--client <id>]       List projects
  tempus project rename <id> <name>         Rename a project
  tempus project archive <id>               Hide a project from default views
  tempus project unarchive <id>             Bring an archived project back
  tempus project delete <id>                Permanently delete a project
                                            and its time entries`,
}

var (
	projectClientFlag   string
	projectArchivedFlag bool
)

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project under a client",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addProject(strings.Join(args, " "), projectClientFlag)
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listProjects()
	},
}

var projectRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a project",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args[1:], " ")
		updateProject(args[0], model.ProjectUpdate{Name: &name}, "Renamed")
	},
}

var projectArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		archived := true
		updateProject(args[0], model.ProjectUpdate{Archived: &archived}, "Archived")
	},
}

var projectUnarchiveCmd = &cobra.Command{
	Use:   "unarchive <id>",
	Short: "Unarchive a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		archived := false
		updateProject(args[0], model.ProjectUpdate{Archived: &archived}, "Unarchived")
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete a project and its entries",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteProject(args[0])
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectRenameCmd)
	projectCmd.AddCommand(projectArchiveCmd)
	projectCmd.AddCommand(projectUnarchiveCmd)
	projectCmd.AddCommand(projectDeleteCmd)

	projectAddCmd.Flags().StringVar(&projectClientFlag, "client", "", "client id or name the project belongs to (required)")
	_ = projectAddCmd.MarkFlagRequired("client")
	projectListCmd.Flags().StringVar(&projectClientFlag, "client", "", "only projects of this client")
	projectListCmd.Flags().BoolVar(&projectArchivedFlag, "archived", false, "include archived projects")
}

func addProject(name, clientRef string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	clientID, err := resolveClient(svc, clientRef)
	if err != nil {
		fail(fmt.Sprintf("Unknown client '%s'", clientRef), err, "Run 'tempus client list' to see available clients")
		return
	}

	p, err := svc.AddProject(name, clientID)
	if err != nil {
		fail("Failed to add project", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added project: %s\n  id: %s\n", p.Name, p.ID)
}

func listProjects() {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	var projects []model.Project
	if projectClientFlag != "" {
		clientID, err := resolveClient(svc, projectClientFlag)
		if err != nil {
			fail(fmt.Sprintf("Unknown client '%s'", projectClientFlag), err, "")
			return
		}
		projects, err = svc.ProjectsByClient(clientID, projectArchivedFlag)
		if err != nil {
			fail("Failed to read projects", err, "")
			return
		}
	} else {
		projects, err = svc.Projects(projectArchivedFlag)
		if err != nil {
			fail("Failed to read projects", err, "")
			return
		}
	}

	if len(projects) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No projects found.")
		return
	}

	data, err := svc.Data()
	if err != nil {
		fail("Failed to read data file", err, "")
		return
	}
	clients := data.ClientIndex()

	for _, p := range projects {
		clientName := "Unknown Client"
		if c, ok := clients[p.ClientID]; ok {
			clientName = c.Name
		}
		archived := ""
		if p.IsArchived {
			archived = " [archived]"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s / %s%s\n  id: %s\n", p.Name, clientName, archived, p.ID)
	}
}

func updateProject(id string, upd model.ProjectUpdate, verb string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	p, err := svc.UpdateProject(id, upd)
	if err != nil {
		fail("Failed to update project", err, "Run 'tempus project list --archived' to see project ids")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s project: %s\n", verb, p.Name)
}

func deleteProject(id string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	if err := svc.DeleteProject(id); err != nil {
		fail("Failed to delete project", err, "Run 'tempus project list --archived' to see project ids")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Deleted project and its time entries.")
}

// resolveClient resolves a client reference: exact id match first, then
// a unique case-insensitive name match.
func resolveClient(svc *service.Service, ref string) (string, error) {
	clients, err := svc.Clients(true)
	if err != nil {
		return "", err
	}

	for _, c := range clients {
		if c.ID == ref {
			return c.ID, nil
		}
	}

	var matches []model.Client
	for _, c := range clients {
		if strings.EqualFold(c.Name, ref) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0].ID, nil
	case 0:
		return "", fmt.Errorf("no client matches %q", ref)
	default:
		return "", fmt.Errorf("%d clients match %q, use the client id", len(matches), ref)
	}
}
