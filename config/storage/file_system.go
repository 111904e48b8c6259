package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileExists checks if a file exists
func FileExists(fs afero.Fs, path string) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return exists, nil
}

// EnsureDir creates the directory holding path when it is missing
func EnsureDir(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	return nil
}

// AtomicWriteFile replaces the file at path with data. The content is written
// to a temporary file in the same directory and renamed over the target, so
// readers see either the old or the new document, never a partial one.
func AtomicWriteFile(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	tmpFile, err := afero.TempFile(fs, filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmpFile.Name()
	defer fs.Remove(tmpName) // no-op once renamed

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temporary file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := fs.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set permissions on temporary file: %w", err)
	}

	if err := fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// AtomicFileUpdate replaces an existing file, optionally keeping a backup of
// the previous content. Old backups beyond the retention limit are pruned.
func AtomicFileUpdate(fs afero.Fs, path string, data []byte, createBackup bool) error {
	bm := NewBackupManager(fs, DefaultBackupRetention)

	if createBackup {
		if _, err := bm.CreateBackup(path); err != nil {
			return fmt.Errorf("failed to create backup file: %w", err)
		}
	}

	perm := os.FileMode(0o600)
	if info, err := fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := AtomicWriteFile(fs, path, data, perm); err != nil {
		return err
	}

	if createBackup {
		// Pruning failures leave extra backups behind but the update itself succeeded.
		_ = bm.CleanupOldBackups(path)
	}

	return nil
}
