package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/model"
)

// clientCmd represents the client parent command
var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
	Long: `Manage clients.

  tempus client add <name>            Create a client
  tempus client list [--archived]     List clients
  tempus client rename <id> <name>    Rename a client
  tempus client archive <id>          Hide a client from default views
  tempus client unarchive <id>        Bring an archived client back
  tempus client delete <id>           Permanently delete a client, its
                                      projects, and all their entries`,
}

var clientArchivedFlag bool

var clientAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a client",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addClient(strings.Join(args, " "))
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listClients()
	},
}

var clientRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a client",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args[1:], " ")
		updateClient(args[0], model.ClientUpdate{Name: &name}, "Renamed")
	},
}

var clientArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a client",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		archived := true
		updateClient(args[0], model.ClientUpdate{Archived: &archived}, "Archived")
	},
}

var clientUnarchiveCmd = &cobra.Command{
	Use:   "unarchive <id>",
	Short: "Unarchive a client",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		archived := false
		updateClient(args[0], model.ClientUpdate{Archived: &archived}, "Unarchived")
	},
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete a client and everything under it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteClient(args[0])
	},
}

func init() {
	rootCmd.AddCommand(clientCmd)
	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientRenameCmd)
	clientCmd.AddCommand(clientArchiveCmd)
	clientCmd.AddCommand(clientUnarchiveCmd)
	clientCmd.AddCommand(clientDeleteCmd)

	clientListCmd.Flags().BoolVar(&clientArchivedFlag, "archived", false, "include archived clients")
}

func addClient(name string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	c, err := svc.AddClient(name)
	if err != nil {
		fail("Failed to add client", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added client: %s\n  id: %s\n", c.Name, c.ID)
}

func listClients() {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	clients, err := svc.Clients(clientArchivedFlag)
	if err != nil {
		fail("Failed to read clients", err, "")
		return
	}

	if len(clients) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No clients found.")
		return
	}

	for _, c := range clients {
		archived := ""
		if c.IsArchived {
			archived = " [archived]"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s%s\n  id: %s\n", c.Name, archived, c.ID)
	}
}

func updateClient(id string, upd model.ClientUpdate, verb string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	c, err := svc.UpdateClient(id, upd)
	if err != nil {
		fail("Failed to update client", err, "Run 'tempus client list --archived' to see client ids")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s client: %s\n", verb, c.Name)
}

func deleteClient(id string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	if err := svc.DeleteClient(id); err != nil {
		fail("Failed to delete client", err, "Run 'tempus client list --archived' to see client ids")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Deleted client, its projects, and their time entries.")
}
