package actions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	omterrors "ohmytheme.dev/ohmytheme/internal/errors"
	"ohmytheme.dev/ohmytheme/internal/runtime"
	"ohmytheme.dev/ohmytheme/internal/tui"
	"ohmytheme.dev/ohmytheme/internal/tui/style"
	"ohmytheme.dev/ohmytheme/internal/utils"
)

// AddRepositoryAction adds a custom theme repository to the configuration.
// When url is empty, it is read from a pipe or prompted for interactively.
// Adding a repository that is already configured is reported as a warning,
// not a failure; only a failed write surfaces as an error.
func AddRepositoryAction(ctx *runtime.Context, url string) error {
	splog := ctx.Splog

	if url == "" {
		var err error
		url, err = promptRepositoryURL()
		if err != nil {
			return err
		}
	}
	if url == "" {
		return fmt.Errorf("no repository URL provided")
	}

	if err := ctx.Store.AddRepository(url); err != nil {
		if errors.Is(err, omterrors.ErrRepositoryExists) {
			splog.Warn("Repository %s is already configured", url)
			return nil
		}
		return err
	}

	splog.Info("Added repository: %s", style.ColorRepoURL(url))
	return nil
}

// promptRepositoryURL asks for a repository URL. Piped input wins over
// prompting so `echo url | omt repo add` works in scripts.
func promptRepositoryURL() (string, error) {
	if !utils.IsInteractive() {
		return utils.ReadFromStdin()
	}

	var url string
	prompt := &survey.Input{
		Message: "Repository URL:",
	}
	if err := survey.AskOne(prompt, &url); err != nil {
		return "", fmt.Errorf("canceled")
	}

	return strings.TrimSpace(url), nil
}

// RemoveRepositoryAction removes a custom theme repository from the
// configuration. When url is empty, an interactive picker is shown.
// Removing a repository that is not configured is reported as a
// warning, not a failure.
func RemoveRepositoryAction(ctx *runtime.Context, url string, skipConfirm bool) error {
	splog := ctx.Splog

	if url == "" {
		repos := ctx.Store.Repositories()
		if len(repos) == 0 {
			splog.Info("No custom repositories configured")
			return nil
		}
		if !utils.IsInteractive() || !tui.IsTTY() {
			return fmt.Errorf("no repository URL provided")
		}

		selected, err := tui.PromptRepoPicker("Select a repository to remove", repos)
		if err != nil {
			return err
		}
		url = selected

		if !skipConfirm {
			confirmed, err := tui.PromptConfirm(fmt.Sprintf("Remove %s?", url), false)
			if err != nil {
				return err
			}
			if !confirmed {
				splog.Info("Canceled")
				return nil
			}
		}
	}

	if err := ctx.Store.RemoveRepository(url); err != nil {
		if errors.Is(err, omterrors.ErrRepositoryNotFound) {
			splog.Warn("Repository %s is not configured", url)
			return nil
		}
		return err
	}

	splog.Info("Removed repository: %s", url)
	return nil
}

// ListRepositoriesAction prints the configured repositories in insertion
// order. With plain set, bare URLs go to stdout for script consumption.
func ListRepositoriesAction(ctx *runtime.Context, plain bool) error {
	splog := ctx.Splog

	repos := ctx.Store.Repositories()

	if plain {
		for _, repo := range repos {
			fmt.Println(repo)
		}
		return nil
	}

	if len(repos) == 0 {
		splog.Info("No custom repositories configured")
		splog.Tip("Add one with 'omt repo add <url>'")
		return nil
	}

	for i, repo := range repos {
		splog.Info("%s %s", style.ColorDim(fmt.Sprintf("%2d.", i+1)), style.ColorRepoURL(repo))
	}
	return nil
}

// OpenRepositoryAction opens a repository page in the system browser.
// When url is empty, an interactive picker is shown.
func OpenRepositoryAction(ctx *runtime.Context, url string) error {
	splog := ctx.Splog

	if url == "" {
		repos := ctx.Store.Repositories()
		if len(repos) == 0 {
			splog.Info("No custom repositories configured")
			return nil
		}
		if !utils.IsInteractive() || !tui.IsTTY() {
			return fmt.Errorf("no repository URL provided")
		}

		selected, err := tui.PromptRepoPicker("Select a repository to open", repos)
		if err != nil {
			return err
		}
		url = selected
	}

	splog.Debug("Opening %s in browser", url)
	if err := utils.OpenBrowser(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
