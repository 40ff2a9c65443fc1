// Package doctor provides diagnostic functionality for checking omt configuration and cache health.
package doctor

import (
	"fmt"

	"ohmytheme.dev/ohmytheme/internal/runtime"
)

// Options contains options for the doctor command
type Options struct {
	Fix bool
}

// Action runs diagnostic checks on the omt configuration and cache
func Action(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog

	if opts.Fix {
		splog.Info("Running omt doctor with --fix...")
	} else {
		splog.Info("Running omt doctor...")
	}
	splog.Newline()

	var warnings []string
	var errors []string

	// Configuration checks
	splog.Info("Configuration:")
	warnings, errors = checkConfiguration(ctx, splog, warnings, errors, opts.Fix)

	splog.Newline()

	// Repository list checks
	splog.Info("Repositories:")
	warnings, errors = checkRepositories(ctx, splog, warnings, errors, opts.Fix)

	splog.Newline()

	// Cache checks
	splog.Info("Cache:")
	warnings, errors = checkCache(ctx, splog, warnings, errors, opts.Fix)

	// Summary
	splog.Newline()
	switch {
	case len(errors) > 0:
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(errors), len(warnings))
		for _, err := range errors {
			splog.Error("  %s", err)
		}
		for _, warn := range warnings {
			splog.Warn("  %s", warn)
		}
		return fmt.Errorf("doctor found %d error(s)", len(errors))
	case len(warnings) > 0:
		if opts.Fix {
			splog.Info("Doctor found %d warning(s), some of which may have been fixed.", len(warnings))
		} else {
			splog.Info("Doctor found %d warning(s). Your omt setup is mostly healthy.", len(warnings))
		}
		for _, warn := range warnings {
			splog.Warn("  %s", warn)
		}
	default:
		splog.Info("✅ All checks passed. Your omt setup is healthy.")
	}

	return nil
}
