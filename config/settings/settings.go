// Package settings writes the active profile into Claude Code's settings file
// (~/.claude/settings.json) under its "env" object.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"ccconfig/config/models"
	"ccconfig/config/storage"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const envPrefix = "ANTHROPIC_"

// Options controls a sync
type Options struct {
	CreateBackup bool // back up the settings file before replacing it
}

// DefaultPath returns ~/.claude/settings.json
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude", "settings.json"), nil
}

// UpdateEnvField sets the profile's non-empty fields under "env" and removes
// the ones the profile leaves empty. Every other key is kept byte for byte.
func UpdateEnvField(originalContent string, profile models.Profile) (string, error) {
	if strings.TrimSpace(originalContent) == "" {
		originalContent = "{}"
	}
	if !gjson.Valid(originalContent) {
		return "", fmt.Errorf("settings file is not valid JSON")
	}
	if env := gjson.Get(originalContent, "env"); env.Exists() && !env.IsObject() {
		return "", fmt.Errorf("env field is not an object")
	}

	updated := originalContent
	var err error
	for _, key := range models.EnvKeys {
		path := "env." + key
		if value := profile.Get(key); value != "" {
			updated, err = sjson.Set(updated, path, value)
		} else {
			updated, err = sjson.Delete(updated, path)
		}
		if err != nil {
			return "", fmt.Errorf("failed to update %s: %w", path, err)
		}
	}

	if err := validateJSONUpdate(originalContent, updated); err != nil {
		return "", fmt.Errorf("update validation failed: %w", err)
	}
	return updated, nil
}

// ReadEnv returns the ANTHROPIC_* entries of the settings file. A missing
// file yields an empty map.
func ReadEnv(fs afero.Fs, path string) (map[string]string, error) {
	env := make(map[string]string)

	exists, err := storage.FileExists(fs, path)
	if err != nil || !exists {
		return env, err
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("settings file %s is not valid JSON", path)
	}

	gjson.GetBytes(data, "env").ForEach(func(key, value gjson.Result) bool {
		if strings.HasPrefix(key.String(), envPrefix) && value.Type == gjson.String {
			env[key.String()] = value.String()
		}
		return true
	})
	return env, nil
}

// InSync reports whether the settings file carries exactly the profile's fields
func InSync(fs afero.Fs, path string, profile models.Profile) (bool, error) {
	env, err := ReadEnv(fs, path)
	if err != nil {
		return false, err
	}
	for _, key := range models.EnvKeys {
		if env[key] != profile.Get(key) {
			return false, nil
		}
	}
	return true, nil
}

// Sync writes profile into the settings file at path, creating it if needed.
func Sync(fs afero.Fs, path string, profile models.Profile, opts Options) error {
	exists, err := storage.FileExists(fs, path)
	if err != nil {
		return err
	}

	original := "{}"
	if exists {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("failed to read settings file: %w", err)
		}
		original = string(data)
	}

	updated, err := UpdateEnvField(original, profile)
	if err != nil {
		return err
	}
	if exists && updated == original {
		return nil
	}

	if !exists {
		if err := storage.EnsureDir(fs, path); err != nil {
			return err
		}
		return storage.AtomicWriteFile(fs, path, []byte(updated), 0o600)
	}
	if err := storage.AtomicFileUpdate(fs, path, []byte(updated), opts.CreateBackup); err != nil {
		return err
	}

	verifyErr := verify(fs, path, profile)
	if verifyErr == nil || !opts.CreateBackup {
		return verifyErr
	}
	bm := storage.NewBackupManager(fs, storage.DefaultBackupRetention)
	if err := bm.RestoreFromLatestBackup(path); err != nil {
		return fmt.Errorf("%w; restoring the previous settings failed: %v", verifyErr, err)
	}
	return fmt.Errorf("%w; previous settings restored", verifyErr)
}

// verify re-reads the settings file after a write
func verify(fs afero.Fs, path string, profile models.Profile) error {
	inSync, err := InSync(fs, path, profile)
	if err != nil {
		return fmt.Errorf("settings file unreadable after update: %w", err)
	}
	if !inSync {
		return fmt.Errorf("settings file does not match the profile after update")
	}
	return nil
}

// validateJSONUpdate checks that only ANTHROPIC_* keys under env changed
func validateJSONUpdate(originalContent, updatedContent string) error {
	var original, updated map[string]interface{}
	if err := json.Unmarshal([]byte(originalContent), &original); err != nil {
		return fmt.Errorf("failed to parse original JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(updatedContent), &updated); err != nil {
		return fmt.Errorf("failed to parse updated JSON: %w", err)
	}

	differences := deepCompare(original, updated, "")
	if len(differences) > 0 {
		sort.Strings(differences)
		return fmt.Errorf("unexpected changes: %s", strings.Join(differences, ", "))
	}
	return nil
}

// deepCompare lists the keys that differ, ignoring env.ANTHROPIC_*
func deepCompare(original, updated map[string]interface{}, prefix string) []string {
	var differences []string

	ignored := func(key string) bool {
		return prefix == "env." && strings.HasPrefix(key, envPrefix)
	}

	for key, originalVal := range original {
		if ignored(key) {
			continue
		}
		updatedVal, exists := updated[key]
		if !exists {
			differences = append(differences, prefix+key+" (missing)")
			continue
		}

		originalMap, originalIsMap := originalVal.(map[string]interface{})
		updatedMap, updatedIsMap := updatedVal.(map[string]interface{})
		if originalIsMap && updatedIsMap {
			differences = append(differences, deepCompare(originalMap, updatedMap, prefix+key+".")...)
		} else if !reflect.DeepEqual(originalVal, updatedVal) {
			differences = append(differences, prefix+key)
		}
	}

	for key := range updated {
		if ignored(key) || (prefix == "" && key == "env") {
			continue
		}
		if _, exists := original[key]; !exists {
			differences = append(differences, prefix+key+" (new)")
		}
	}

	return differences
}
