package style

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force a deterministic color profile so rendering does not depend
	// on the terminal running the tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestGetRepoColor(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic for the same URL", func(t *testing.T) {
		t.Parallel()

		first, ok := GetRepoColor("https://github.com/user/themes")
		require.True(t, ok)
		second, ok := GetRepoColor("https://github.com/user/themes")
		require.True(t, ok)
		require.Equal(t, first, second)
	})

	t.Run("returns no color for an empty URL", func(t *testing.T) {
		t.Parallel()

		_, ok := GetRepoColor("")
		require.False(t, ok)
	})

	t.Run("picks colors from the palette", func(t *testing.T) {
		t.Parallel()

		color, ok := GetRepoColor("https://github.com/user/themes")
		require.True(t, ok)

		found := false
		for _, rgb := range OmtColors {
			candidate := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]))
			if candidate == color {
				found = true
				break
			}
		}
		require.True(t, found)
	})
}

func TestColorRepoURL(t *testing.T) {
	t.Parallel()

	t.Run("renders the URL text", func(t *testing.T) {
		t.Parallel()

		rendered := ColorRepoURL("https://github.com/user/themes")
		require.Contains(t, rendered, "https://github.com/user/themes")
	})

	t.Run("renders identically across calls", func(t *testing.T) {
		t.Parallel()

		url := "https://github.com/other/dotfiles"
		require.Equal(t, ColorRepoURL(url), ColorRepoURL(url))
	})
}

func TestColorDim(t *testing.T) {
	t.Parallel()

	require.Contains(t, ColorDim("faded"), "faded")
}
