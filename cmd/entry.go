package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/model"
)

// entryCmd represents the entry parent command
var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Edit, archive, or delete individual entries",
	Long: `Edit, archive, or delete individual time entries by id. Entry ids are
shown by 'tempus list'.

  tempus entry edit <id> [--description ...] [--project ...] [--start ...] [--end ...]
  tempus entry archive <id>      Hide an entry from default views
  tempus entry unarchive <id>    Bring an archived entry back
  tempus entry delete <id>       Permanently delete an entry

Archiving a running entry stops it first. Editing re-validates that the
end time stays after the start time.`,
}

var (
	entryDescriptionFlag string
	entryProjectFlag     string
	entryStartFlag       string
	entryEndFlag         string
)

var entryEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry's fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editEntry(cmd, args[0])
	},
}

var entryArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive an entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		archived := true
		patchEntry(args[0], model.EntryUpdate{Archived: &archived}, "Archived")
	},
}

var entryUnarchiveCmd = &cobra.Command{
	Use:   "unarchive <id>",
	Short: "Unarchive an entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		archived := false
		patchEntry(args[0], model.EntryUpdate{Archived: &archived}, "Unarchived")
	},
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete an entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		removeEntry(args[0])
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entryEditCmd)
	entryCmd.AddCommand(entryArchiveCmd)
	entryCmd.AddCommand(entryUnarchiveCmd)
	entryCmd.AddCommand(entryDeleteCmd)

	entryEditCmd.Flags().StringVar(&entryDescriptionFlag, "description", "", "new description")
	entryEditCmd.Flags().StringVar(&entryProjectFlag, "project", "", "move the entry to this project (id or name)")
	entryEditCmd.Flags().StringVar(&entryStartFlag, "start", "", "new start time")
	entryEditCmd.Flags().StringVar(&entryEndFlag, "end", "", "new end time")
}

// editEntry builds an update from the changed flags and applies it
func editEntry(cmd *cobra.Command, id string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	var upd model.EntryUpdate
	now := time.Now()

	if cmd.Flags().Changed("description") {
		upd.Description = &entryDescriptionFlag
	}
	if entryProjectFlag != "" {
		project, err := findProject(svc, entryProjectFlag)
		if err != nil {
			fail(fmt.Sprintf("Unknown project '%s'", entryProjectFlag), err, "")
			return
		}
		upd.ProjectID = &project.ID
	}
	if entryStartFlag != "" {
		start, err := parseWhen(entryStartFlag, now)
		if err != nil {
			fail(fmt.Sprintf("Invalid --start '%s'", entryStartFlag), err, "")
			return
		}
		upd.StartTime = &start
	}
	if entryEndFlag != "" {
		end, err := parseWhen(entryEndFlag, now)
		if err != nil {
			fail(fmt.Sprintf("Invalid --end '%s'", entryEndFlag), err, "")
			return
		}
		upd.EndTime = &end
	}

	if upd.Description == nil && upd.ProjectID == nil && upd.StartTime == nil && upd.EndTime == nil {
		fail("Nothing to change", nil, "Give at least one of --description, --project, --start, --end")
		return
	}

	e, err := svc.UpdateEntry(id, upd)
	if err != nil {
		fail("Failed to update entry", err, "Run 'tempus list' to see entry ids")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated: %s\n", describeEntry(*e))
}

func patchEntry(id string, upd model.EntryUpdate, verb string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	e, err := svc.UpdateEntry(id, upd)
	if err != nil {
		fail("Failed to update entry", err, "Run 'tempus list --archived' to see entry ids")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s: %s\n", verb, describeEntry(*e))
}

func removeEntry(id string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	if err := svc.DeleteEntry(id); err != nil {
		fail("Failed to delete entry", err, "Run 'tempus list --archived' to see entry ids")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Deleted entry.")
}
