package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectModel(t *testing.T) {
	t.Parallel()

	newModel := func() SelectModel {
		return SelectModel{
			Title: "Select a setting to edit:",
			Options: []SelectOption{
				{Label: "cache_expiry: 300", Value: "cache_expiry"},
				{Label: "max_cache_size: 50", Value: "max_cache_size"},
				{Label: "Exit", Value: "exit"},
			},
		}
	}

	t.Run("down moves the cursor and wraps", func(t *testing.T) {
		t.Parallel()
		m := newModel()

		updated, _ := m.Update(keyMsg(tea.KeyDown))
		m = updated.(SelectModel)
		require.Equal(t, 1, m.Cursor)

		updated, _ = m.Update(keyMsg(tea.KeyDown))
		m = updated.(SelectModel)
		updated, _ = m.Update(keyMsg(tea.KeyDown))
		m = updated.(SelectModel)
		require.Equal(t, 0, m.Cursor)
	})

	t.Run("up from the top wraps to the bottom", func(t *testing.T) {
		t.Parallel()
		m := newModel()

		updated, _ := m.Update(keyMsg(tea.KeyUp))
		m = updated.(SelectModel)
		require.Equal(t, 2, m.Cursor)
	})

	t.Run("enter selects the option under the cursor", func(t *testing.T) {
		t.Parallel()
		m := newModel()
		m.Cursor = 1

		updated, _ := m.Update(keyMsg(tea.KeyEnter))
		m = updated.(SelectModel)
		require.True(t, m.Done)
		require.Equal(t, "max_cache_size", m.Selected)
		require.NoError(t, m.Err)
	})

	t.Run("escape cancels", func(t *testing.T) {
		t.Parallel()
		m := newModel()

		updated, _ := m.Update(keyMsg(tea.KeyEsc))
		m = updated.(SelectModel)
		require.True(t, m.Done)
		require.Error(t, m.Err)
	})
}

func TestRepoSelectModel(t *testing.T) {
	t.Parallel()

	newModel := func() RepoSelectModel {
		m := RepoSelectModel{
			Message: "Select a repository to remove",
			Choices: []RepoChoice{
				{Display: "https://github.com/user/themes", Value: "https://github.com/user/themes"},
				{Display: "https://github.com/other/dotfiles", Value: "https://github.com/other/dotfiles"},
				{Display: "https://gitlab.com/team/palettes", Value: "https://gitlab.com/team/palettes"},
			},
		}
		m.updateFiltered()
		return m
	}

	t.Run("typing narrows the choices", func(t *testing.T) {
		t.Parallel()
		m := newModel()

		updated, _ := m.Update(runeMsg("gitlab"))
		m = updated.(RepoSelectModel)
		require.Len(t, m.Filtered, 1)
		require.Equal(t, "https://gitlab.com/team/palettes", m.Filtered[0].Value)
	})

	t.Run("filtering is case-insensitive", func(t *testing.T) {
		t.Parallel()
		m := newModel()

		updated, _ := m.Update(runeMsg("GitHub"))
		m = updated.(RepoSelectModel)
		require.Len(t, m.Filtered, 2)
	})

	t.Run("backspace widens the filter again", func(t *testing.T) {
		t.Parallel()
		m := newModel()

		updated, _ := m.Update(runeMsg("x"))
		m = updated.(RepoSelectModel)
		require.Empty(t, m.Filtered)

		updated, _ = m.Update(keyMsg(tea.KeyBackspace))
		m = updated.(RepoSelectModel)
		require.Len(t, m.Filtered, 3)
	})

	t.Run("enter selects from the filtered list", func(t *testing.T) {
		t.Parallel()
		m := newModel()

		updated, _ := m.Update(runeMsg("dotfiles"))
		m = updated.(RepoSelectModel)
		updated, _ = m.Update(keyMsg(tea.KeyEnter))
		m = updated.(RepoSelectModel)
		require.True(t, m.Done)
		require.Equal(t, "https://github.com/other/dotfiles", m.Selected)
	})

	t.Run("enter with no matches selects nothing", func(t *testing.T) {
		t.Parallel()
		m := newModel()

		updated, _ := m.Update(runeMsg("nomatch"))
		m = updated.(RepoSelectModel)
		updated, _ = m.Update(keyMsg(tea.KeyEnter))
		m = updated.(RepoSelectModel)
		require.False(t, m.Done)
		require.Empty(t, m.Selected)
	})
}

func TestPromptRepoPicker(t *testing.T) {
	t.Run("fails when no repositories are configured", func(t *testing.T) {
		_, err := PromptRepoPicker("Select a repository", nil)
		require.Error(t, err)
	})

	t.Run("refuses to prompt when interactivity is disabled", func(t *testing.T) {
		t.Setenv("OMT_TEST_NO_INTERACTIVE", "1")

		_, err := PromptRepoPicker("Select a repository", []string{"https://github.com/user/themes"})
		require.True(t, errors.Is(err, ErrInteractiveDisabled))
	})
}
