package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"ohmytheme.dev/ohmytheme/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "omt",
		Short: "Oh My Theme is a command line tool for managing terminal themes",
		Long: `Oh My Theme is a command line tool for managing terminal themes.

It keeps your preferences and custom theme repositories in a single
JSON config file and caches downloaded themes locally.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor || os.Getenv("NO_COLOR") != "" || !tui.IsTTY() {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(newRepoCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCacheCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}
