// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"ohmytheme.dev/ohmytheme/internal/config"
)

// CompleteRepositories is a helper for cobra.ValidArgsFunction that
// returns the configured custom repository URLs.
func CompleteRepositories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	store, err := config.DefaultStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return store.Repositories(), cobra.ShellCompDirectiveNoFileComp
}
