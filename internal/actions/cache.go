package actions

import (
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"ohmytheme.dev/ohmytheme/internal/config"
	"ohmytheme.dev/ohmytheme/internal/runtime"
	"ohmytheme.dev/ohmytheme/internal/tui/style"
	"ohmytheme.dev/ohmytheme/internal/utils"
)

// CacheInfoAction prints the cache location and usage summary
func CacheInfoAction(ctx *runtime.Context) error {
	splog := ctx.Splog

	stats, err := ctx.Cache.Stats()
	if err != nil {
		return err
	}

	splog.Info("Cache directory: %s", ctx.Cache.Dir())

	if stats.Entries == 0 {
		splog.Info("Cache is empty")
		return nil
	}

	splog.Info("Entries: %d", stats.Entries)
	splog.Info("Total size: %s", formatSize(stats.TotalSize))
	splog.Info("Oldest entry: %s", style.ColorDim(formatAge(stats.Oldest)))
	splog.Info("Newest entry: %s", style.ColorDim(formatAge(stats.Newest)))

	if expiry, ok := ctx.Store.Setting(config.SettingCacheExpiry); ok && expiry > 0 {
		maxAge := time.Duration(expiry) * time.Second
		entries, err := ctx.Cache.Entries()
		if err != nil {
			return err
		}
		stale := 0
		for _, entry := range entries {
			if ctx.Cache.IsStale(entry, maxAge) {
				stale++
			}
		}
		if stale > 0 {
			splog.Info("Stale entries: %s", style.ColorYellow(fmt.Sprintf("%d", stale)))
			splog.Tip("Run 'omt cache clean' to remove them")
		}
	}

	return nil
}

// CacheCleanAction prunes the cache. With all set, every entry goes;
// otherwise the cache_expiry and max_cache_size settings decide what
// stays. Clearing everything asks for confirmation unless yes is set.
func CacheCleanAction(ctx *runtime.Context, all, yes bool) error {
	splog := ctx.Splog

	stats, err := ctx.Cache.Stats()
	if err != nil {
		return err
	}
	if stats.Entries == 0 {
		splog.Info("Cache is empty")
		return nil
	}

	if all {
		if !yes {
			if !utils.IsInteractive() {
				return fmt.Errorf("refusing to clear the cache without --yes in non-interactive mode")
			}

			confirm := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Remove all %d cached entries?", stats.Entries),
				Default: false,
			}
			if err := survey.AskOne(prompt, &confirm); err != nil {
				return fmt.Errorf("canceled")
			}
			if !confirm {
				splog.Info("Canceled")
				return nil
			}
		}

		removed, err := ctx.Cache.Clear()
		if err != nil {
			return err
		}
		splog.Info("Removed %d cache entries", removed)
		return nil
	}

	// Settings that are absent or zero disable that limit
	expiry, _ := ctx.Store.Setting(config.SettingCacheExpiry)
	maxEntries, _ := ctx.Store.Setting(config.SettingMaxCacheSize)

	removed, err := ctx.Cache.Prune(time.Duration(expiry)*time.Second, maxEntries)
	if err != nil {
		return err
	}

	if removed == 0 {
		splog.Info("Nothing to clean")
		return nil
	}
	splog.Info("Removed %d stale cache entries", removed)
	return nil
}

// formatSize renders a byte count in a human-friendly unit
func formatSize(size int64) string {
	switch {
	case size >= 1024*1024:
		return fmt.Sprintf("%.1f MiB", float64(size)/(1024*1024))
	case size >= 1024:
		return fmt.Sprintf("%.1f KiB", float64(size)/1024)
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// formatAge renders how long ago a timestamp was
func formatAge(when time.Time) string {
	age := time.Since(when)
	switch {
	case age >= 24*time.Hour:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	case age >= time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	case age >= time.Minute:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return "just now"
	}
}
