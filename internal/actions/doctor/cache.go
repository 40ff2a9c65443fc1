package doctor

import (
	"fmt"
	"time"

	"ohmytheme.dev/ohmytheme/internal/config"
	"ohmytheme.dev/ohmytheme/internal/runtime"
	"ohmytheme.dev/ohmytheme/internal/tui"
)

// checkCache performs theme cache health checks
func checkCache(ctx *runtime.Context, splog *tui.Splog, warnings []string, errors []string, fix bool) ([]string, []string) {
	entries, err := ctx.Cache.Entries()
	if err != nil {
		errors = append(errors, fmt.Sprintf("cannot read cache directory %s: %v", ctx.Cache.Dir(), err))
		splog.Error("  cannot read cache directory: %v", err)
		return warnings, errors
	}

	if len(entries) == 0 {
		splog.Info("  ✅ Cache is empty")
		return warnings, errors
	}

	cfg := ctx.Store.Load()

	// A zero or missing setting disables that limit
	var maxAge time.Duration
	if expiry := cfg.Settings[config.SettingCacheExpiry]; expiry > 0 {
		maxAge = time.Duration(expiry) * time.Second
	}
	maxEntries := cfg.Settings[config.SettingMaxCacheSize]

	staleCount := 0
	for _, entry := range entries {
		if ctx.Cache.IsStale(entry, maxAge) {
			staleCount++
		}
	}

	excessCount := 0
	if maxEntries > 0 && len(entries) > maxEntries {
		excessCount = len(entries) - maxEntries
	}

	if staleCount == 0 && excessCount == 0 {
		splog.Info("  ✅ Cache is healthy (%d entry(ies))", len(entries))
		return warnings, errors
	}

	if fix {
		removed, err := ctx.Cache.Prune(maxAge, maxEntries)
		if err != nil {
			splog.Error("  Failed to prune cache: %v", err)
			warnings = append(warnings, "cache has stale or excess entries (fix failed)")
		} else {
			splog.Info("  ✅ Pruned %d cache entry(ies)", removed)
		}
		return warnings, errors
	}

	if staleCount > 0 {
		warnings = append(warnings, fmt.Sprintf("%d stale cache entry(ies)", staleCount))
		splog.Warn("  Found %d stale cache entry(ies) (run 'omt cache clean' to remove)", staleCount)
	}
	if excessCount > 0 {
		warnings = append(warnings, fmt.Sprintf("cache holds %d entries, %d over the max_cache_size limit", len(entries), excessCount))
		splog.Warn("  Cache holds %d entries, %d over the max_cache_size limit", len(entries), excessCount)
	}

	return warnings, errors
}
