package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepositoryErrors(t *testing.T) {
	t.Parallel()

	t.Run("exists error matches its sentinel", func(t *testing.T) {
		t.Parallel()

		err := NewRepositoryExistsError("https://github.com/user/themes")
		require.True(t, stderrors.Is(err, ErrRepositoryExists))
		require.False(t, stderrors.Is(err, ErrRepositoryNotFound))
		require.Contains(t, err.Error(), "https://github.com/user/themes")
	})

	t.Run("not found error matches its sentinel", func(t *testing.T) {
		t.Parallel()

		err := NewRepositoryNotFoundError("https://github.com/user/themes")
		require.True(t, stderrors.Is(err, ErrRepositoryNotFound))
		require.False(t, stderrors.Is(err, ErrRepositoryExists))
	})

	t.Run("matching survives wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("adding repository: %w", NewRepositoryExistsError("https://github.com/user/themes"))
		require.True(t, stderrors.Is(err, ErrRepositoryExists))
	})
}

func TestSettingNotFoundError(t *testing.T) {
	t.Parallel()

	err := NewSettingNotFoundError("cache_expiry")
	require.True(t, stderrors.Is(err, ErrSettingNotFound))
	require.Contains(t, err.Error(), "cache_expiry")
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("disk full")
	err := NewWriteError("/tmp/config.json", cause)
	require.True(t, stderrors.Is(err, cause))
	require.Contains(t, err.Error(), "/tmp/config.json")
	require.Contains(t, err.Error(), "disk full")
}
