package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"ohmytheme.dev/ohmytheme/internal/config"
	"ohmytheme.dev/ohmytheme/internal/runtime"
	"ohmytheme.dev/ohmytheme/internal/tui"
)

// checkConfiguration performs config file and settings checks
func checkConfiguration(ctx *runtime.Context, splog *tui.Splog, warnings []string, errors []string, fix bool) ([]string, []string) {
	store := ctx.Store

	// Check the config file itself
	_, err := store.Read()
	switch {
	case err == nil:
		splog.Info("  ✅ Config file loaded (%s)", store.Path())
	case os.IsNotExist(err):
		splog.Info("  ✅ No config file yet, using built-in defaults")
	default:
		warnings = append(warnings, fmt.Sprintf("config file %s could not be parsed (run 'omt config edit' to repair it)", store.Path()))
		splog.Warn("  Config file could not be parsed: %v", err)
	}

	// Check that the config directory accepts writes
	if err := store.EnsureDir(); err != nil {
		errors = append(errors, fmt.Sprintf("cannot create config directory %s: %v", store.Dir(), err))
		splog.Error("  cannot create config directory: %v", err)
		return warnings, errors
	}
	probe := filepath.Join(store.Dir(), ".omt-doctor-probe")
	if err := os.WriteFile(probe, []byte{}, 0o600); err != nil {
		errors = append(errors, fmt.Sprintf("config directory %s is not writable: %v", store.Dir(), err))
		splog.Error("  config directory is not writable: %v", err)
	} else {
		_ = os.Remove(probe)
		splog.Info("  ✅ Config directory is writable")
	}

	// Check known settings for missing or nonsensical values
	cfg := store.Load()
	knownSettings := []struct {
		key string
		def int
	}{
		{config.SettingCacheExpiry, config.DefaultCacheExpiry},
		{config.SettingMaxCacheSize, config.DefaultMaxCacheSize},
	}

	issueCount := 0
	fixedCount := 0
	for _, setting := range knownSettings {
		value, ok := cfg.Settings[setting.key]
		if ok && value > 0 {
			continue
		}
		issueCount++

		var problem string
		if !ok {
			problem = fmt.Sprintf("setting %s is not set", setting.key)
		} else {
			problem = fmt.Sprintf("setting %s has a non-positive value (%d)", setting.key, value)
		}

		if fix {
			if err := store.SetSetting(setting.key, setting.def); err != nil {
				splog.Error("  Failed to reset %s: %v", setting.key, err)
				warnings = append(warnings, fmt.Sprintf("%s (fix failed)", problem))
			} else {
				splog.Info("  ✅ Reset %s to its default (%d)", setting.key, setting.def)
				fixedCount++
			}
		} else {
			warnings = append(warnings, problem)
		}
	}

	if issueCount > 0 {
		if fix {
			if fixedCount == issueCount {
				splog.Info("  ✅ All %d setting issue(s) fixed", fixedCount)
			} else {
				splog.Warn("  Found %d setting issue(s), fixed %d", issueCount, fixedCount)
			}
		} else {
			splog.Warn("  Found %d setting issue(s) (run 'omt doctor --fix' to reset defaults)", issueCount)
		}
	} else {
		splog.Info("  ✅ Settings look sane")
	}

	return warnings, errors
}
