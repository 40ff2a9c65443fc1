package cli_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ohmytheme.dev/ohmytheme/internal/config"
	"ohmytheme.dev/ohmytheme/testhelpers"
)

func TestDoctorCommand(t *testing.T) {
	t.Run("passes on a healthy setup", func(t *testing.T) {
		testhelpers.NewScene(t)

		_, err := testhelpers.RunCLI(t, "repo", "add", "https://github.com/user/themes")
		require.NoError(t, err)

		output, err := testhelpers.RunCLI(t, "doctor")
		require.NoError(t, err)
		require.Contains(t, output, "All checks passed")
	})

	t.Run("passes before any config file exists", func(t *testing.T) {
		testhelpers.NewScene(t)

		output, err := testhelpers.RunCLI(t, "doctor")
		require.NoError(t, err)
		require.Contains(t, output, "No config file yet")
		require.Contains(t, output, "All checks passed")
	})

	t.Run("warns on a corrupt config file", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.WriteConfig(t, `{not json`)

		output, err := testhelpers.RunCLI(t, "doctor")
		require.NoError(t, err, "a corrupt config is a warning, not a failure")
		require.Contains(t, output, "could not be parsed")
		require.Contains(t, output, "Doctor found 1 warning(s)")
	})

	t.Run("warns on explicitly empty settings", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.WriteConfig(t, `{"custom_repositories": [], "settings": {}}`)

		output, err := testhelpers.RunCLI(t, "doctor")
		require.NoError(t, err)
		require.Contains(t, output, "cache_expiry is not set")
		require.Contains(t, output, "Doctor found 2 warning(s)")
	})

	t.Run("fix backfills missing settings", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.WriteConfig(t, `{"custom_repositories": [], "settings": {}}`)

		output, err := testhelpers.RunCLI(t, "doctor", "--fix")
		require.NoError(t, err)
		require.Contains(t, output, "Reset cache_expiry to its default (300)")

		raw := scene.ReadConfig(t)
		require.Contains(t, raw, `"cache_expiry": 300`)
		require.Contains(t, raw, `"max_cache_size": 50`)

		// A second run comes back clean
		output, err = testhelpers.RunCLI(t, "doctor")
		require.NoError(t, err)
		require.Contains(t, output, "All checks passed")
	})

	t.Run("warns on duplicate repository entries", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.WriteConfig(t, `{
  "custom_repositories": ["https://github.com/user/themes", "https://github.com/user/themes"],
  "settings": {"cache_expiry": 300, "max_cache_size": 50}
}`)

		output, err := testhelpers.RunCLI(t, "doctor")
		require.NoError(t, err)
		require.Contains(t, output, "duplicate repository entry: https://github.com/user/themes")
	})

	t.Run("fix rewrites a repository list with duplicates", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.WriteConfig(t, `{
  "custom_repositories": ["https://github.com/user/themes", "https://github.com/user/themes"],
  "settings": {"cache_expiry": 300, "max_cache_size": 50}
}`)

		output, err := testhelpers.RunCLI(t, "doctor", "--fix")
		require.NoError(t, err)
		require.Contains(t, output, "Rewrote repository list")

		store := config.NewStore(scene.ConfigDir, config.FileName)
		require.Equal(t, []string{"https://github.com/user/themes"}, store.Repositories())
	})

	t.Run("warns on stale cache entries and fix prunes them", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.WriteCacheEntry(t, "stale.json", `{}`)
		scene.BackdateCacheEntry(t, "stale.json", time.Hour)

		output, err := testhelpers.RunCLI(t, "doctor")
		require.NoError(t, err)
		require.Contains(t, output, "stale cache entry(ies)")

		output, err = testhelpers.RunCLI(t, "doctor", "--fix")
		require.NoError(t, err)
		require.Contains(t, output, "Pruned 1 cache entry(ies)")

		_, err = os.Stat(scene.CacheEntryPath("stale.json"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("fails when the config directory cannot be created", func(t *testing.T) {
		testhelpers.NewScene(t)

		// Point the config dir below a regular file so MkdirAll fails
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
		t.Setenv(config.EnvConfigDir, filepath.Join(blocker, "oh-my-theme"))

		output, err := testhelpers.RunCLI(t, "doctor")
		require.Error(t, err)
		require.Contains(t, err.Error(), "doctor found 1 error(s)")
		require.Contains(t, output, "cannot create config directory")
	})
}
