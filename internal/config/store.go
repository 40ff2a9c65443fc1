package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ohmytheme.dev/ohmytheme/internal/errors"
)

const (
	// DirName is the directory under the user config root that holds omt state.
	DirName = "oh-my-theme"

	// FileName is the name of the configuration document inside the config directory.
	FileName = "config.json"

	// EnvConfigDir overrides the configuration directory when set.
	// Used by tests to point the store at a sandbox.
	EnvConfigDir = "OMT_CONFIG_DIR"
)

// Store reads and writes the configuration document at a fixed location.
// Every mutating operation is a full load-mutate-save transaction against
// the file; no state is cached between calls. The store assumes a single
// writer: concurrent writers race and the last save wins.
type Store struct {
	dir  string
	file string
}

// NewStore creates a store rooted at the given directory and file name.
func NewStore(dir, file string) *Store {
	return &Store{dir: dir, file: file}
}

// DefaultStore creates a store at the user-level config location,
// honoring the OMT_CONFIG_DIR override.
func DefaultStore() (*Store, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return NewStore(dir, FileName), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user config directory: %w", err)
	}

	return NewStore(filepath.Join(base, DirName), FileName), nil
}

// Dir returns the configuration directory
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path of the configuration file
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.file)
}

// EnsureDir creates the configuration directory (including parents) if
// it does not exist. Idempotent; a filesystem failure propagates.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", s.dir, err)
	}
	return nil
}

// Read reads and parses the stored document, back-filling defaults for
// missing top-level keys. This is the fallible form of Load: a missing
// file, an unreadable file, and a corrupt document all surface as
// errors here. Read errors come back raw so callers can test them with
// os.IsNotExist. Most callers want Load instead.
func (s *Store) Read() (Configuration, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return Configuration{}, err
	}

	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("failed to parse %s: %w", s.file, err)
	}

	cfg.mergeDefaults()
	return cfg, nil
}

// Load returns the stored configuration merged with defaults. A missing
// file yields the default configuration without creating anything on
// disk; an unreadable or corrupt file does the same. A bad config file
// can therefore never stop the tool from starting; its contents are
// replaced wholesale on the next save.
func (s *Store) Load() Configuration {
	cfg, err := s.Read()
	if err != nil {
		return DefaultConfiguration()
	}
	return cfg
}

// Save writes the configuration as pretty-printed JSON, replacing the
// previous file contents in full. The write is not atomic: a crash
// mid-write can leave a truncated file, which the fail-safe Load
// absorbs by falling back to defaults.
func (s *Store) Save(cfg Configuration) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0o600); err != nil {
		return errors.NewWriteError(s.Path(), err)
	}
	return nil
}

// AddRepository appends a repository URL to the configured list and
// saves. Adding a URL that is already present is a no-op: nothing is
// written and ErrRepositoryExists is returned.
func (s *Store) AddRepository(url string) error {
	cfg := s.Load()

	if cfg.HasRepository(url) {
		return errors.NewRepositoryExistsError(url)
	}

	cfg.CustomRepositories = append(cfg.CustomRepositories, url)
	return s.Save(cfg)
}

// RemoveRepository removes a repository URL from the configured list
// and saves. Removing a URL that is not present is a no-op: the file is
// left untouched and ErrRepositoryNotFound is returned.
func (s *Store) RemoveRepository(url string) error {
	cfg := s.Load()

	if !cfg.HasRepository(url) {
		return errors.NewRepositoryNotFoundError(url)
	}

	// Remove the first match. Add prevents duplicates, so this is the
	// only occurrence in any file the tool wrote itself.
	for i, repo := range cfg.CustomRepositories {
		if repo == url {
			cfg.CustomRepositories = append(cfg.CustomRepositories[:i], cfg.CustomRepositories[i+1:]...)
			break
		}
	}

	return s.Save(cfg)
}

// Repositories returns the configured repository URLs in insertion order
func (s *Store) Repositories() []string {
	cfg := s.Load()
	if cfg.CustomRepositories == nil {
		return []string{}
	}
	return cfg.CustomRepositories
}

// Setting returns the named integer setting. The boolean reports
// whether the key was present; the choice of fallback for absent keys
// stays with the caller.
func (s *Store) Setting(key string) (int, bool) {
	cfg := s.Load()
	value, ok := cfg.Settings[key]
	return value, ok
}

// SetSetting stores an integer setting and saves the configuration
func (s *Store) SetSetting(key string, value int) error {
	cfg := s.Load()

	if cfg.Settings == nil {
		cfg.Settings = make(map[string]int)
	}

	cfg.Settings[key] = value
	return s.Save(cfg)
}
