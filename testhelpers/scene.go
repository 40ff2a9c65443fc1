// Package testhelpers provides shared helpers for omt CLI tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ohmytheme.dev/ohmytheme/internal/cache"
	"ohmytheme.dev/ohmytheme/internal/config"
)

// Scene points omt at throwaway config and cache locations for one test.
type Scene struct {
	ConfigDir string
	CacheDir  string
}

// NewScene redirects the config, cache, and log locations into temp
// directories and disables interactive prompts for the duration of the test.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv.
func NewScene(t *testing.T) *Scene {
	t.Helper()

	configDir := t.TempDir()
	cacheDir := t.TempDir()

	t.Setenv(config.EnvConfigDir, configDir)
	t.Setenv(cache.EnvCacheDir, cacheDir)
	t.Setenv("OMT_LOG_FILE", filepath.Join(cacheDir, "logs", "omt.log"))
	t.Setenv("OMT_TEST_NO_INTERACTIVE", "true")

	return &Scene{
		ConfigDir: configDir,
		CacheDir:  cacheDir,
	}
}

// ConfigPath returns the location of the config file inside the scene.
func (s *Scene) ConfigPath() string {
	return filepath.Join(s.ConfigDir, config.FileName)
}

// WriteConfig seeds the scene's config file with raw content.
func (s *Scene) WriteConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(s.ConfigPath(), []byte(content), 0o600))
}

// ReadConfig returns the raw content of the scene's config file.
func (s *Scene) ReadConfig(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(s.ConfigPath())
	require.NoError(t, err)
	return string(data)
}

// WriteCacheEntry seeds a cached theme file inside the scene.
func (s *Scene) WriteCacheEntry(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, cache.NewManager(s.CacheDir).WriteEntry(name, []byte(content)))
}

// CacheEntryPath returns where a cached theme file lives inside the scene.
func (s *Scene) CacheEntryPath(name string) string {
	return filepath.Join(cache.NewManager(s.CacheDir).EntriesDir(), name)
}

// BackdateCacheEntry pushes a cached file's modification time into the past.
func (s *Scene) BackdateCacheEntry(t *testing.T, name string, age time.Duration) {
	t.Helper()
	path := filepath.Join(cache.NewManager(s.CacheDir).EntriesDir(), name)
	when := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, when, when))
}
