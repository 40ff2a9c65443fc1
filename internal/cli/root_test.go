package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ohmytheme.dev/ohmytheme/testhelpers"
)

func TestRootCommand(t *testing.T) {
	t.Run("version prints build information", func(t *testing.T) {
		testhelpers.NewScene(t)

		output, err := testhelpers.RunCLI(t, "--version")
		require.NoError(t, err)
		require.Contains(t, output, "omt version test (commit none, built unknown)")
	})

	t.Run("bare config falls back to help when prompts are disabled", func(t *testing.T) {
		testhelpers.NewScene(t)

		output, err := testhelpers.RunCLI(t, "config")
		require.NoError(t, err)
		require.Contains(t, output, "Get and set omt configuration")
	})
}
