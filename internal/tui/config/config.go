// Package config provides TUI components for configuration management.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ohmytheme.dev/ohmytheme/internal/config"
	"ohmytheme.dev/ohmytheme/internal/tui"
)

// TUIAction provides an interactive TUI for editing configuration
func TUIAction(store *config.Store) error {
	splog := tui.NewSplog()

	for {
		cfg := store.Load()

		// Build options with current values displayed
		options := []tui.SelectOption{
			{
				Label: fmt.Sprintf("%s: %s", config.SettingCacheExpiry, formatSetting(cfg, config.SettingCacheExpiry)),
				Value: config.SettingCacheExpiry,
			},
			{
				Label: fmt.Sprintf("%s: %s", config.SettingMaxCacheSize, formatSetting(cfg, config.SettingMaxCacheSize)),
				Value: config.SettingMaxCacheSize,
			},
			{
				Label: "Exit",
				Value: "exit",
			},
		}

		// Show selection menu
		selected, err := tui.PromptSelect("Select a setting to edit:", options, 0)
		if err != nil {
			return err
		}

		if selected == "exit" {
			break
		}

		current := cfg.Settings[selected]
		input, err := tui.PromptTextInput(fmt.Sprintf("Enter value for %s (current: %d):", selected, current), strconv.Itoa(current))
		if err != nil {
			if errors.Is(err, tui.ErrInteractiveDisabled) || strings.Contains(err.Error(), "canceled") {
				continue
			}
			return err
		}

		value, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			splog.Warn("Invalid value %q: settings must be integers", input)
			continue
		}

		if value == current {
			continue
		}

		if err := store.SetSetting(selected, value); err != nil {
			splog.Info("Failed to save config: %v", err)
			continue
		}
		splog.Info("Set %s to: %d", selected, value)
	}

	return nil
}

func formatSetting(cfg config.Configuration, key string) string {
	if value, ok := cfg.Settings[key]; ok {
		return strconv.Itoa(value)
	}
	return "unset"
}
