package cli

import (
	"github.com/spf13/cobra"

	"ohmytheme.dev/ohmytheme/internal/actions"
	"ohmytheme.dev/ohmytheme/internal/cli/helpers"
	"ohmytheme.dev/ohmytheme/internal/runtime"
)

// newCacheCmd creates the cache command
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and clean the local theme cache",
		Long: `Inspect and clean the local theme cache.

Examples:
  omt cache info
  omt cache clean
  omt cache clean --all`,
	}

	cmd.AddCommand(newCacheInfoCmd())
	cmd.AddCommand(newCacheCleanCmd())

	return cmd
}

// newCacheInfoCmd creates the cache info command
func newCacheInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "info",
		Short:        "Show cache location and usage",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CacheInfoAction(ctx)
			})
		},
	}

	return cmd
}

// newCacheCleanCmd creates the cache clean command
func newCacheCleanCmd() *cobra.Command {
	var (
		all bool
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stale entries from the theme cache",
		Long: `Remove stale entries from the theme cache.

By default entries older than the cache_expiry setting are removed and
the cache is trimmed to the max_cache_size newest entries. With --all
the entire cache is cleared.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CacheCleanAction(ctx, all, yes)
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Remove every cached entry, not just stale ones")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
