package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path to a backup of the given data file with
// the given rotation number. Backups are named <file>.bak.N; lower
// numbers are more recent (.bak.1 is the most recent backup).
func BackupPath(dataPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", dataPath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new
// backup: .bak.2 -> .bak.3, .bak.1 -> .bak.2, dropping the oldest.
// Missing files are skipped.
func rotateBackups(dataPath string) error {
	if err := os.Remove(BackupPath(dataPath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(dataPath, i), BackupPath(dataPath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup rotates existing backups and copies the current data
// file to .bak.1 before a destructive overwrite. A missing data file
// is not an error; there is simply nothing to back up.
func CreateBackup(dataPath string) error {
	if _, err := os.Stat(dataPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(dataPath); err != nil {
		return err
	}

	return copyFile(dataPath, BackupPath(dataPath, 1))
}

// BackupInfo describes an available backup file.
type BackupInfo struct {
	Number int    // The backup number (1 is most recent)
	Path   string // The full path to the backup file
}

// ListBackups returns the available backups of the given data file,
// most recent first. Returns an empty slice if none exist.
func ListBackups(dataPath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		path := BackupPath(dataPath, i)
		if _, err := os.Stat(path); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: path})
		}
	}
	return backups
}

// RestoreBackup copies backup n back over the data file. The current
// state is itself backed up first so a restore is reversible.
func RestoreBackup(dataPath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	// Read the backup before rotating: CreateBackup shifts .bak.N
	// files and would move the target out from under us.
	raw, err := os.ReadFile(BackupPath(dataPath, n))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	if err := CreateBackup(dataPath); err != nil {
		return err
	}

	return os.WriteFile(dataPath, raw, 0644)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Close()
}
