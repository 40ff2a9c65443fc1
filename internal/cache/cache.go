// Package cache manages the on-disk cache of downloaded theme data.
//
// Cached files live in a single flat directory under the user cache
// root. The cache is advisory: losing it costs a re-download, never
// data, so most callers treat errors here as warnings.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// DirName is the directory under the user cache root that holds omt state.
	DirName = "oh-my-theme"

	// EnvCacheDir overrides the cache directory when set.
	// Used by tests to point the cache at a sandbox.
	EnvCacheDir = "OMT_CACHE_DIR"

	// entriesDirName is the subdirectory holding cached theme files,
	// kept separate from logs and other state under the cache root.
	entriesDirName = "themes"
)

// DefaultDir returns the cache directory, honoring the OMT_CACHE_DIR override.
func DefaultDir() (string, error) {
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		return dir, nil
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache directory: %w", err)
	}

	return filepath.Join(base, DirName), nil
}

// Entry describes a single cached file.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Stats summarizes cache usage.
type Stats struct {
	Entries   int
	TotalSize int64
	Oldest    time.Time // zero when the cache is empty
	Newest    time.Time
}

// Manager reads and prunes the cache directory.
type Manager struct {
	dir string
}

// NewManager creates a manager rooted at the given cache directory.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// DefaultManager creates a manager at the user-level cache location.
func DefaultManager() (*Manager, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewManager(dir), nil
}

// Dir returns the cache root directory
func (m *Manager) Dir() string {
	return m.dir
}

// EntriesDir returns the directory holding cached theme files
func (m *Manager) EntriesDir() string {
	return filepath.Join(m.dir, entriesDirName)
}

// Entries lists the cached files, oldest first. A cache directory that
// does not exist yet is simply an empty cache.
func (m *Manager) Entries() ([]Entry, error) {
	dirEntries, err := os.ReadDir(m.EntriesDir())
	if os.IsNotExist(err) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		info, err := dirEntry.Info()
		if err != nil {
			// Entry disappeared between ReadDir and Info
			continue
		}
		entries = append(entries, Entry{
			Name:    dirEntry.Name(),
			Path:    filepath.Join(m.EntriesDir(), dirEntry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ModTime.Before(entries[j].ModTime)
	})

	return entries, nil
}

// Stats summarizes the current cache contents.
func (m *Manager) Stats() (Stats, error) {
	entries, err := m.Entries()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Entries: len(entries)}
	for _, entry := range entries {
		stats.TotalSize += entry.Size
	}
	if len(entries) > 0 {
		stats.Oldest = entries[0].ModTime
		stats.Newest = entries[len(entries)-1].ModTime
	}
	return stats, nil
}

// WriteEntry stores a cached file, creating the cache directory if needed.
func (m *Manager) WriteEntry(name string, data []byte) error {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid cache entry name %q", name)
	}

	if err := os.MkdirAll(m.EntriesDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	path := filepath.Join(m.EntriesDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", name, err)
	}
	return nil
}

// ReadEntry returns the contents of a cached file.
func (m *Manager) ReadEntry(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid cache entry name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(m.EntriesDir(), name))
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry %s: %w", name, err)
	}
	return data, nil
}

// IsStale returns true if the entry is older than maxAge.
// A maxAge of zero or less means entries never go stale.
func (m *Manager) IsStale(entry Entry, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return time.Since(entry.ModTime) > maxAge
}

// Prune removes stale and excess cache entries. Entries older than
// maxAge go first; if more than maxEntries remain afterwards, the
// oldest are removed until the count fits. It returns the number of
// entries removed.
func (m *Manager) Prune(maxAge time.Duration, maxEntries int) (int, error) {
	entries, err := m.Entries()
	if err != nil {
		return 0, err
	}

	removed := 0
	kept := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if m.IsStale(entry, maxAge) {
			if err := os.Remove(entry.Path); err != nil {
				return removed, fmt.Errorf("failed to remove cache entry %s: %w", entry.Name, err)
			}
			removed++
			continue
		}
		kept = append(kept, entry)
	}

	if maxEntries > 0 && len(kept) > maxEntries {
		// kept is still oldest first
		excess := kept[:len(kept)-maxEntries]
		for _, entry := range excess {
			if err := os.Remove(entry.Path); err != nil {
				return removed, fmt.Errorf("failed to remove cache entry %s: %w", entry.Name, err)
			}
			removed++
		}
	}

	return removed, nil
}

// Clear removes every cache entry and returns how many were removed.
func (m *Manager) Clear() (int, error) {
	entries, err := m.Entries()
	if err != nil {
		return 0, err
	}

	if err := os.RemoveAll(m.EntriesDir()); err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}

	return len(entries), nil
}
