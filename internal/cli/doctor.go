package cli

import (
	"github.com/spf13/cobra"

	"ohmytheme.dev/ohmytheme/internal/actions/doctor"
	"ohmytheme.dev/ohmytheme/internal/cli/helpers"
	"ohmytheme.dev/ohmytheme/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with your omt setup",
		Long: `Run diagnostic checks on your omt configuration and cache.

The doctor command checks:
  - Configuration: config file integrity, directory permissions, and settings
  - Repositories: empty or duplicate custom repository entries
  - Cache: stale entries and cache size limits`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return doctor.Action(ctx, doctor.Options{Fix: fix})
			})
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Attempt to automatically fix any issues found")

	return cmd
}
