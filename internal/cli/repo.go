package cli

import (
	"github.com/spf13/cobra"

	"ohmytheme.dev/ohmytheme/internal/actions"
	"ohmytheme.dev/ohmytheme/internal/cli/helpers"
	"ohmytheme.dev/ohmytheme/internal/runtime"
)

// newRepoCmd creates the repo command
func newRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage custom theme repositories",
		Long: `Manage the custom theme repositories listed in your config.

Examples:
  omt repo add https://github.com/user/themes
  omt repo remove
  omt repo list`,
	}

	cmd.AddCommand(newRepoAddCmd())
	cmd.AddCommand(newRepoRemoveCmd())
	cmd.AddCommand(newRepoListCmd())
	cmd.AddCommand(newRepoOpenCmd())

	return cmd
}

// newRepoAddCmd creates the repo add command
func newRepoAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [url]",
		Short: "Add a custom theme repository",
		Long: `Add a custom theme repository to your config.

With no argument, prompts for the URL (or reads it from piped stdin).
Adding a repository that is already configured is a no-op.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) > 0 {
				url = args[0]
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.AddRepositoryAction(ctx, url)
			})
		},
	}

	return cmd
}

// newRepoRemoveCmd creates the repo remove command
func newRepoRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove [url]",
		Aliases: []string{"rm"},
		Short:   "Remove a custom theme repository",
		Long: `Remove a custom theme repository from your config.

With no argument, opens an interactive selector over the configured
repositories. Removing a repository that is not configured is a no-op.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteRepositories,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) > 0 {
				url = args[0]
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RemoveRepositoryAction(ctx, url, yes)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// newRepoListCmd creates the repo list command
func newRepoListCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:          "list",
		Aliases:      []string{"ls"},
		Short:        "List the configured custom theme repositories",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ListRepositoriesAction(ctx, plain)
			})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print bare URLs, one per line")

	return cmd
}

// newRepoOpenCmd creates the repo open command
func newRepoOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [url]",
		Short: "Open a custom theme repository in your browser",
		Long: `Open a custom theme repository in your browser.

With no argument, opens an interactive selector over the configured
repositories.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteRepositories,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) > 0 {
				url = args[0]
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.OpenRepositoryAction(ctx, url)
			})
		},
	}

	return cmd
}
