package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ohmytheme.dev/ohmytheme/testhelpers"
)

func TestRepoAddCommand(t *testing.T) {
	t.Run("add creates the config file with defaults", func(t *testing.T) {
		scene := testhelpers.NewScene(t)

		output, err := testhelpers.RunCLI(t, "repo", "add", "https://github.com/user/themes")
		require.NoError(t, err)
		require.Contains(t, output, "Added repository: https://github.com/user/themes")

		// Verify the saved file carries the new entry and the defaults
		raw := scene.ReadConfig(t)
		require.Contains(t, raw, `"https://github.com/user/themes"`)
		require.Contains(t, raw, `"cache_expiry": 300`)
		require.Contains(t, raw, `"max_cache_size": 50`)
	})

	t.Run("add of a configured repository warns and exits zero", func(t *testing.T) {
		scene := testhelpers.NewScene(t)

		_, err := testhelpers.RunCLI(t, "repo", "add", "https://github.com/user/themes")
		require.NoError(t, err)
		before := scene.ReadConfig(t)

		output, err := testhelpers.RunCLI(t, "repo", "add", "https://github.com/user/themes")
		require.NoError(t, err)
		require.Contains(t, output, "already configured")

		// Verify the file was not rewritten
		require.Equal(t, before, scene.ReadConfig(t))
	})

	t.Run("add without a URL fails when prompts are disabled", func(t *testing.T) {
		testhelpers.NewScene(t)

		_, err := testhelpers.RunCLI(t, "repo", "add")
		require.Error(t, err)
		require.Contains(t, err.Error(), "no repository URL provided")
	})
}

func TestRepoRemoveCommand(t *testing.T) {
	t.Run("remove deletes only the named entry", func(t *testing.T) {
		scene := testhelpers.NewScene(t)

		_, err := testhelpers.RunCLI(t, "repo", "add", "https://github.com/user/themes")
		require.NoError(t, err)
		_, err = testhelpers.RunCLI(t, "repo", "add", "https://gitlab.com/user/dotfiles")
		require.NoError(t, err)

		output, err := testhelpers.RunCLI(t, "repo", "remove", "https://github.com/user/themes")
		require.NoError(t, err)
		require.Contains(t, output, "Removed repository: https://github.com/user/themes")

		raw := scene.ReadConfig(t)
		require.NotContains(t, raw, "github.com/user/themes")
		require.Contains(t, raw, "gitlab.com/user/dotfiles")
	})

	t.Run("remove of an unknown repository warns and exits zero", func(t *testing.T) {
		scene := testhelpers.NewScene(t)

		_, err := testhelpers.RunCLI(t, "repo", "add", "https://github.com/user/themes")
		require.NoError(t, err)
		before := scene.ReadConfig(t)

		output, err := testhelpers.RunCLI(t, "repo", "remove", "https://github.com/someone/else")
		require.NoError(t, err)
		require.Contains(t, output, "is not configured")

		// Verify the file was not rewritten
		require.Equal(t, before, scene.ReadConfig(t))
	})

	t.Run("remove with no repositories configured is a no-op", func(t *testing.T) {
		testhelpers.NewScene(t)

		output, err := testhelpers.RunCLI(t, "repo", "remove")
		require.NoError(t, err)
		require.Contains(t, output, "No custom repositories configured")
	})
}

func TestRepoListCommand(t *testing.T) {
	t.Run("list shows repositories in insertion order", func(t *testing.T) {
		testhelpers.NewScene(t)

		_, err := testhelpers.RunCLI(t, "repo", "add", "https://github.com/user/themes")
		require.NoError(t, err)
		_, err = testhelpers.RunCLI(t, "repo", "add", "https://gitlab.com/user/dotfiles")
		require.NoError(t, err)

		output, err := testhelpers.RunCLI(t, "repo", "list")
		require.NoError(t, err)
		require.Contains(t, output, "1. https://github.com/user/themes")
		require.Contains(t, output, "2. https://gitlab.com/user/dotfiles")
	})

	t.Run("list with no repositories suggests adding one", func(t *testing.T) {
		testhelpers.NewScene(t)

		output, err := testhelpers.RunCLI(t, "repo", "list")
		require.NoError(t, err)
		require.Contains(t, output, "No custom repositories configured")
		require.Contains(t, output, "omt repo add")
	})

	t.Run("list --plain prints bare URLs", func(t *testing.T) {
		testhelpers.NewScene(t)

		_, err := testhelpers.RunCLI(t, "repo", "add", "https://github.com/user/themes")
		require.NoError(t, err)
		_, err = testhelpers.RunCLI(t, "repo", "add", "https://gitlab.com/user/dotfiles")
		require.NoError(t, err)

		output, err := testhelpers.RunCLI(t, "repo", "list", "--plain")
		require.NoError(t, err)
		require.Equal(t, "https://github.com/user/themes\nhttps://gitlab.com/user/dotfiles\n", output)
	})
}
