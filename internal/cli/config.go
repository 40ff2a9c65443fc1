package cli

import (
	"github.com/spf13/cobra"

	"ohmytheme.dev/ohmytheme/internal/actions"
	"ohmytheme.dev/ohmytheme/internal/cli/helpers"
	"ohmytheme.dev/ohmytheme/internal/config"
	"ohmytheme.dev/ohmytheme/internal/runtime"
	"ohmytheme.dev/ohmytheme/internal/tui"
	tuiconfig "ohmytheme.dev/ohmytheme/internal/tui/config"
	"ohmytheme.dev/ohmytheme/internal/utils"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set omt configuration",
		Long: `Get and set omt configuration values.

Run without a subcommand to edit settings interactively.

Examples:
  omt config get cache_expiry
  omt config set cache_expiry 600
  omt config list`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Interactive settings editor when attached to a terminal,
			// help text otherwise
			if !tui.IsTTY() || !utils.IsInteractive() {
				return cmd.Help()
			}

			store, err := config.DefaultStore()
			if err != nil {
				return err
			}
			return tuiconfig.TUIAction(store)
		},
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigEditCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	var defaultValue int

	cmd := &cobra.Command{
		Use:          "get <key>",
		Short:        "Print a setting value",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fallback *int
			if cmd.Flags().Changed("default") {
				fallback = &defaultValue
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.GetSettingAction(ctx, args[0], fallback)
			})
		},
	}

	cmd.Flags().IntVar(&defaultValue, "default", 0, "Value to print when the setting is not set")

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "set <key> <value>",
		Short:        "Set a setting value",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SetSettingAction(ctx, args[0], args[1])
			})
		},
	}

	return cmd
}

// newConfigListCmd creates the config list command
func newConfigListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "Show the resolved configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigListAction(ctx)
			})
		},
	}

	return cmd
}

// newConfigEditCmd creates the config edit command
func newConfigEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "edit",
		Short:        "Open the config file in your editor",
		Long:         "Open the config file in $EDITOR and validate the result before saving.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.EditConfigAction(ctx)
			})
		},
	}

	return cmd
}

// newConfigPathCmd creates the config path command
func newConfigPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "path",
		Short:        "Print the config file location",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigPathAction(ctx)
			})
		},
	}

	return cmd
}
