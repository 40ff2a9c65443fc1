package doctor

import (
	"fmt"
	"strings"

	"ohmytheme.dev/ohmytheme/internal/runtime"
	"ohmytheme.dev/ohmytheme/internal/tui"
)

// checkRepositories performs custom repository list checks
func checkRepositories(ctx *runtime.Context, splog *tui.Splog, warnings []string, errors []string, fix bool) ([]string, []string) {
	store := ctx.Store
	repos := store.Repositories()

	if len(repos) == 0 {
		splog.Info("  ✅ No custom repositories configured")
		return warnings, errors
	}

	// Empty or duplicate entries only appear when the file was edited
	// by hand; the add command refuses both.
	seen := make(map[string]bool)
	cleaned := make([]string, 0, len(repos))
	emptyCount := 0
	duplicateCount := 0
	for _, repo := range repos {
		if strings.TrimSpace(repo) == "" {
			emptyCount++
			continue
		}
		if seen[repo] {
			duplicateCount++
			if !fix {
				warnings = append(warnings, fmt.Sprintf("duplicate repository entry: %s", repo))
			}
			continue
		}
		seen[repo] = true
		cleaned = append(cleaned, repo)
	}
	if emptyCount > 0 && !fix {
		warnings = append(warnings, fmt.Sprintf("found %d empty repository entry(ies)", emptyCount))
	}

	if emptyCount == 0 && duplicateCount == 0 {
		splog.Info("  ✅ %d repository(ies) configured", len(repos))
		return warnings, errors
	}

	if fix {
		cfg := store.Load()
		cfg.CustomRepositories = cleaned
		if err := store.Save(cfg); err != nil {
			splog.Error("  Failed to rewrite repository list: %v", err)
			warnings = append(warnings, "repository list has empty or duplicate entries (fix failed)")
		} else {
			splog.Info("  ✅ Rewrote repository list (%d entries removed)", emptyCount+duplicateCount)
		}
	} else {
		splog.Warn("  Found %d problem(s) in the repository list (run 'omt doctor --fix' to rewrite it)", emptyCount+duplicateCount)
	}

	return warnings, errors
}
