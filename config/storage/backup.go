package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"
)

// DefaultBackupRetention is the default number of backups to keep
const DefaultBackupRetention = 3

// BackupManager manages backup files written next to the original
type BackupManager struct {
	fs afero.Fs
	// MaxBackups is the maximum number of backups to retain
	MaxBackups int
	now        func() time.Time
}

// NewBackupManager creates a new BackupManager
func NewBackupManager(fs afero.Fs, maxBackups int) *BackupManager {
	if maxBackups <= 0 {
		maxBackups = DefaultBackupRetention
	}
	return &BackupManager{
		fs:         fs,
		MaxBackups: maxBackups,
		now:        time.Now,
	}
}

// CreateBackup copies filePath to filePath.backup-YYYYMMDDHHMMSS-PID
func (bm *BackupManager) CreateBackup(filePath string) (string, error) {
	timestamp := bm.now().Format("20060102150405")
	backupPath := fmt.Sprintf("%s.backup-%s-%d", filePath, timestamp, os.Getpid())

	if err := bm.copyFile(filePath, backupPath); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	return backupPath, nil
}

// ListBackups returns the backups of filePath, oldest first
func (bm *BackupManager) ListBackups(filePath string) ([]string, error) {
	pattern := fmt.Sprintf("%s.backup-*", filePath)

	backupFiles, err := afero.Glob(bm.fs, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	// Names embed a sortable timestamp; mod time breaks ties within one second.
	sort.SliceStable(backupFiles, func(i, j int) bool {
		iInfo, err1 := bm.fs.Stat(backupFiles[i])
		jInfo, err2 := bm.fs.Stat(backupFiles[j])
		if err1 != nil || err2 != nil || iInfo.ModTime().Equal(jInfo.ModTime()) {
			return backupFiles[i] < backupFiles[j]
		}
		return iInfo.ModTime().Before(jInfo.ModTime())
	})

	return backupFiles, nil
}

// CleanupOldBackups removes old backup files, retaining only the most recent MaxBackups
func (bm *BackupManager) CleanupOldBackups(filePath string) error {
	backupFiles, err := bm.ListBackups(filePath)
	if err != nil {
		return err
	}

	numToRemove := len(backupFiles) - bm.MaxBackups
	if numToRemove <= 0 {
		return nil
	}

	for _, oldBackup := range backupFiles[:numToRemove] {
		if err := bm.fs.Remove(oldBackup); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", oldBackup, err)
		}
	}

	return nil
}

// RestoreFromLatestBackup restores the file from the most recent backup
func (bm *BackupManager) RestoreFromLatestBackup(filePath string) error {
	backupFiles, err := bm.ListBackups(filePath)
	if err != nil {
		return err
	}

	if len(backupFiles) == 0 {
		return fmt.Errorf("no backup files found for %s", filePath)
	}

	latest := backupFiles[len(backupFiles)-1]
	if match, _ := filepath.Match(filePath+".backup-*", latest); !match {
		return fmt.Errorf("backup path %s is not a valid backup for %s", latest, filePath)
	}

	if err := bm.copyFile(latest, filePath); err != nil {
		return fmt.Errorf("failed to restore from backup: %w", err)
	}
	return nil
}

// copyFile copies src to dst and carries the permission bits over
func (bm *BackupManager) copyFile(src, dst string) error {
	data, err := afero.ReadFile(bm.fs, src)
	if err != nil {
		return err
	}

	perm := os.FileMode(0o600)
	if info, err := bm.fs.Stat(src); err == nil {
		perm = info.Mode().Perm()
	}

	if err := afero.WriteFile(bm.fs, dst, data, perm); err != nil {
		return err
	}
	return bm.fs.Chmod(dst, perm)
}
