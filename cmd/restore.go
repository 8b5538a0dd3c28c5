package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/storage"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [n]",
	Short: "Restore the data file from a backup",
	Long: `Restore the data file from one of its rotated backups. Every save
keeps up to three backups next to the data file (.bak.1 is the most
recent). Without an argument the most recent backup is restored.

The current state is backed up first, so a restore can itself be
undone. Only JSON data files have rotated backups.

Examples:
  tempus restore        Restore the most recent backup
  tempus restore 2      Restore the second most recent backup`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := 1
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				fail(fmt.Sprintf("Invalid backup number '%s'", args[0]), err, "Use 1, 2 or 3")
				return
			}
			n = parsed
		}
		restoreBackup(n)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

// restoreBackup restores backup n of the resolved data file
func restoreBackup(n int) {
	path, _, err := resolveDataPath()
	if err != nil {
		fail("Failed to determine data file location", err, "Check that your home directory is accessible")
		return
	}

	backups := storage.ListBackups(path)
	if len(backups) == 0 {
		fail("No backups found", nil, fmt.Sprintf("Backups are created next to %s on every save", path))
		return
	}

	if err := storage.RestoreBackup(path, n); err != nil {
		fail("Failed to restore backup", err, "Run with a backup number between 1 and 3")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored backup %d to %s\n", n, path)
}
