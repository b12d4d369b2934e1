package storage

import (
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path of backup n of the storage file.
// Backups are named shifts.jsonl.bak.N; lower numbers are more recent.
func BackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups renames .bak.1 -> .bak.2, .bak.2 -> .bak.3, and deletes the
// oldest .bak.3 if it exists. Missing files are not an error.
func rotateBackups(storagePath string) error {
	if err := os.Remove(BackupPath(storagePath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(storagePath, i), BackupPath(storagePath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup rotates existing backups and copies the storage file to .bak.1.
// If the storage file doesn't exist, no backup is created.
func CreateBackup(storagePath string) error {
	if _, err := os.Stat(storagePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath); err != nil {
		return err
	}

	return copyFile(storagePath, BackupPath(storagePath, 1))
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1, 2, or 3)
	Path   string // The full path to the backup file
}

// ListBackups returns the existing backups of the storage file, most recent first
func ListBackups(storagePath string) ([]BackupInfo, error) {
	var backups []BackupInfo

	for i := 1; i <= MaxBackupCount; i++ {
		path := BackupPath(storagePath, i)
		if _, err := os.Stat(path); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: path})
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return backups, nil
}

// RestoreBackup copies backup backupNum over the storage file.
// The current state is backed up first, so a restore can itself be undone.
func RestoreBackup(storagePath string, backupNum int) error {
	if backupNum < 1 || backupNum > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", backupNum, MaxBackupCount)
	}

	backupPath := BackupPath(storagePath, backupNum)
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", backupNum)
		}
		return err
	}

	// Hold the backup contents before rotation renames the file
	tmp := storagePath + ".restore"
	if err := copyFile(backupPath, tmp); err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp) }()

	if err := CreateBackup(storagePath); err != nil {
		return err
	}

	return os.Rename(tmp, storagePath)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = sourceFile.Close() }()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}
	return destFile.Close()
}
