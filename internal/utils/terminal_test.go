package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInteractive(t *testing.T) {
	t.Run("forced off via environment", func(t *testing.T) {
		t.Setenv("OMT_NON_INTERACTIVE", "1")
		require.False(t, IsInteractive())
	})

	t.Run("forced off via test environment", func(t *testing.T) {
		t.Setenv("OMT_TEST_NO_INTERACTIVE", "1")
		require.False(t, IsInteractive())
	})
}

func TestReadFromStdin(t *testing.T) {
	t.Setenv("OMT_TEST_NO_INTERACTIVE", "1")

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r

	expected := "https://github.com/user/themes"
	go func() {
		_, _ = w.Write([]byte(expected + "\n"))
		_ = w.Close()
	}()

	url, err := ReadFromStdin()
	require.NoError(t, err)
	require.Equal(t, expected, url)
}
