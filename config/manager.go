// Package config owns the profile store: it loads, validates, mutates and
// persists the JSON document that holds every profile.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ccconfig/config/models"
	"ccconfig/config/storage"
	"ccconfig/config/validation"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	storeDirName  = ".cc-config"
	storeFileName = "profiles.json"
	storeFileMode = 0o600
)

// DefaultStorePath returns ~/.cc-config/profiles.json
func DefaultStorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, storeDirName, storeFileName), nil
}

// Manager manages the profile store at a single path
type Manager struct {
	path string
	fs   afero.Fs
	log  zerolog.Logger
	mu   sync.Mutex // serialises callers within one process only
}

// Option configures a Manager
type Option func(*Manager)

// WithFs sets the filesystem the store lives on
func WithFs(fs afero.Fs) Option {
	return func(m *Manager) {
		m.fs = fs
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a Manager for the store file at path
func NewManager(path string, opts ...Option) *Manager {
	m := &Manager{
		path: path,
		fs:   afero.NewOsFs(),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Path returns the store file path
func (m *Manager) Path() string {
	return m.path
}

// Fs returns the filesystem the store lives on
func (m *Manager) Fs() afero.Fs {
	return m.fs
}

// Exists reports whether the store file has been created
func (m *Manager) Exists() (bool, error) {
	exists, err := storage.FileExists(m.fs, m.path)
	if err != nil {
		return false, persistenceError(m.path, err)
	}
	return exists, nil
}

// Load reads the store, creating it with the default profile when absent.
func (m *Manager) Load() (*models.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

// Save validates and writes the whole store.
func (m *Manager) Save(store *models.Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(store)
}

// Current returns the active profile
func (m *Manager) Current() (string, models.Profile, error) {
	store, err := m.Load()
	if err != nil {
		return "", models.Profile{}, err
	}
	profile, ok := store.Profiles[store.Current]
	if !ok {
		return "", models.Profile{}, &ProfileError{Name: store.Current, Err: ErrProfileNotFound}
	}
	return store.Current, profile, nil
}

// Get returns a profile by name
func (m *Manager) Get(name string) (models.Profile, error) {
	store, err := m.Load()
	if err != nil {
		return models.Profile{}, err
	}
	profile, ok := store.Profiles[name]
	if !ok {
		return models.Profile{}, &ProfileError{Name: name, Err: ErrProfileNotFound}
	}
	return profile, nil
}

// List returns the active profile name and every profile
func (m *Manager) List() (string, map[string]models.Profile, error) {
	store, err := m.Load()
	if err != nil {
		return "", nil, err
	}
	return store.Current, store.Profiles, nil
}

// Use makes name the active profile
func (m *Manager) Use(name string) error {
	return m.update(func(store *models.Store) error {
		if _, ok := store.Profiles[name]; !ok {
			return &ProfileError{Name: name, Err: ErrProfileNotFound}
		}
		store.Current = name
		return nil
	})
}

// Add inserts a new profile. The base URL falls back to models.DefaultBaseURL.
func (m *Manager) Add(input models.AddProfileInput) error {
	if err := validation.ValidateName(input.Name); err != nil {
		return err
	}
	return m.update(func(store *models.Store) error {
		if _, ok := store.Profiles[input.Name]; ok {
			return &ProfileError{Name: input.Name, Err: ErrProfileAlreadyExists}
		}
		if err := validation.ValidateToken(input.Token); err != nil {
			return err
		}

		baseURL := strings.TrimSpace(input.BaseURL)
		if baseURL == "" {
			baseURL = models.DefaultBaseURL
		}
		if err := validation.ValidateBaseURL(baseURL); err != nil {
			return err
		}

		store.Profiles[input.Name] = models.Profile{
			AuthToken: input.Token,
			BaseURL:   baseURL,
			Model:     strings.TrimSpace(input.Model),
		}
		return nil
	})
}

// Remove deletes a profile. The active profile cannot be removed.
func (m *Manager) Remove(name string) error {
	return m.update(func(store *models.Store) error {
		if _, ok := store.Profiles[name]; !ok {
			return &ProfileError{Name: name, Err: ErrProfileNotFound}
		}
		if store.Current == name {
			return &ProfileError{Name: name, Err: ErrCannotRemoveActiveProfile}
		}
		delete(store.Profiles, name)
		return nil
	})
}

// update runs one read-mutate-write cycle. The file is untouched when
// mutate or validation fails.
func (m *Manager) update(mutate func(*models.Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, err := m.load()
	if err != nil {
		return err
	}
	if err := mutate(store); err != nil {
		return err
	}
	return m.save(store)
}

func (m *Manager) load() (*models.Store, error) {
	if err := storage.EnsureDir(m.fs, m.path); err != nil {
		return nil, persistenceError(m.path, err)
	}

	exists, err := storage.FileExists(m.fs, m.path)
	if err != nil {
		return nil, persistenceError(m.path, err)
	}
	if !exists {
		store := models.NewDefaultStore()
		if err := m.save(store); err != nil {
			return nil, err
		}
		m.log.Info().Str("path", m.path).Msg("created profile store with default profile")
		return store, nil
	}

	data, err := afero.ReadFile(m.fs, m.path)
	if err != nil {
		return nil, persistenceError(m.path, fmt.Errorf("failed to read profile store: %w", err))
	}

	if problems := validation.CheckDocument(data); len(problems) > 0 {
		return nil, malformedError(m.path, problems, nil)
	}

	var store models.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, malformedError(m.path, nil, err)
	}

	if problems := validation.CheckStore(store); len(problems) > 0 {
		return nil, invalidError(m.path, problems)
	}

	m.log.Debug().Str("path", m.path).Int("profiles", len(store.Profiles)).Msg("loaded profile store")
	return &store, nil
}

func (m *Manager) save(store *models.Store) error {
	if problems := validation.CheckStore(*store); len(problems) > 0 {
		return invalidError(m.path, problems)
	}

	data, err := Marshal(store)
	if err != nil {
		return persistenceError(m.path, err)
	}

	if err := storage.EnsureDir(m.fs, m.path); err != nil {
		return persistenceError(m.path, err)
	}
	if err := storage.AtomicWriteFile(m.fs, m.path, data, storeFileMode); err != nil {
		return persistenceError(m.path, err)
	}

	m.log.Debug().Str("path", m.path).Str("current", store.Current).Msg("saved profile store")
	return nil
}

// Marshal renders a store the way it is written to disk: two-space indented
// JSON with sorted keys and no trailing newline. Unknown keys read from the
// file are written back.
func Marshal(store *models.Store) ([]byte, error) {
	data, err := models.EncodeJSON(store, "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize profile store: %w", err)
	}
	return data, nil
}
