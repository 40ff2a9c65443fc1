package actions

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"ohmytheme.dev/ohmytheme/internal/config"
	omterrors "ohmytheme.dev/ohmytheme/internal/errors"
	"ohmytheme.dev/ohmytheme/internal/runtime"
	"ohmytheme.dev/ohmytheme/internal/tui"
	"ohmytheme.dev/ohmytheme/internal/tui/style"
)

// GetSettingAction prints a setting value to stdout. The output is
// machine-readable, so scripts can do `omt config get cache_expiry`.
// An absent key fails unless a fallback was supplied.
func GetSettingAction(ctx *runtime.Context, key string, fallback *int) error {
	value, ok := ctx.Store.Setting(key)
	if !ok {
		if fallback == nil {
			return omterrors.NewSettingNotFoundError(key)
		}
		value = *fallback
	}

	fmt.Println(value)
	return nil
}

// SetSettingAction parses and stores an integer setting
func SetSettingAction(ctx *runtime.Context, key, rawValue string) error {
	value, err := strconv.Atoi(rawValue)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %s (settings must be integers)", key, rawValue)
	}

	if err := ctx.Store.SetSetting(key, value); err != nil {
		return err
	}

	ctx.Splog.Info("Set %s to: %d", key, value)
	return nil
}

// ConfigListAction prints all configuration values in a formatted way
func ConfigListAction(ctx *runtime.Context) error {
	splog := ctx.Splog
	cfg := ctx.Store.Load()

	var lines []string
	lines = append(lines, fmt.Sprintf("%s: %s", style.ColorCyan("file"), ctx.Store.Path()))

	keys := make([]string, 0, len(cfg.Settings))
	for key := range cfg.Settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %d", style.ColorCyan(key), cfg.Settings[key]))
	}

	lines = append(lines, fmt.Sprintf("%s: %d configured", style.ColorCyan("custom_repositories"), len(cfg.CustomRepositories)))

	splog.Page(strings.Join(lines, "\n"))
	splog.Newline()

	return nil
}

// ConfigPathAction prints the configuration file path to stdout
func ConfigPathAction(ctx *runtime.Context) error {
	fmt.Println(ctx.Store.Path())
	return nil
}

// EditConfigAction opens the configuration document in the user's
// editor, then validates and saves the result. A document that no
// longer parses is rejected and the stored file is left untouched.
func EditConfigAction(ctx *runtime.Context) error {
	splog := ctx.Splog

	initial, err := os.ReadFile(ctx.Store.Path())
	if err != nil {
		// Nothing stored yet: start the editor from the defaults
		initial, err = json.MarshalIndent(ctx.Store.Load(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
	}

	edited, err := tui.OpenEditor(string(initial), "omt-config-*.json")
	if err != nil {
		return err
	}

	var cfg config.Configuration
	if err := json.Unmarshal([]byte(edited), &cfg); err != nil {
		return fmt.Errorf("edited config is not valid: %w (file left unchanged)", err)
	}

	if err := ctx.Store.Save(cfg); err != nil {
		return err
	}

	splog.Info("Saved %s", ctx.Store.Path())
	return nil
}
