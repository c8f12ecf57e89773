// Where: internal/app/setup.go
// What: The guided setup command.
// Why: Walk a human through creating OAuth credentials and verify the download.
package app

import (
	"io"

	"github.com/credkit/credkit/internal/browser"
	"github.com/credkit/credkit/internal/credfile"
	"github.com/credkit/credkit/internal/instructions"
	"github.com/credkit/credkit/internal/meta"
	"github.com/credkit/credkit/internal/ui"
)

// runSetup prints the numbered setup instructions, offers to open the
// console in a browser, and then re-checks the credential file until it is
// valid or the user gives up. With --yes the flow is non-interactive: print
// instructions, check once, exit with the check code.
func runSetup(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.NewWithEmoji(out, !cli.NoEmoji)

	path, err := resolveCredentialsPath("", cli)
	if err != nil {
		return exitWithError(out, err)
	}
	_, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return exitWithError(out, err)
	}
	consoleURL := cfg.EffectiveConsoleURL()

	if res := deps.Checker(path); res.Status == credfile.StatusValid {
		console.Success("Credential file already present and valid: " + path)
		return ExitValid
	}

	steps, err := instructions.Render(instructions.Data{
		AppName:         meta.AppName,
		ConsoleURL:      consoleURL,
		CredentialsPath: path,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🧭", "Manual credential setup")
	console.ItemPlain("Follow these steps in the provider console:")
	console.Blank()
	for i, step := range steps {
		console.Step(i+1, step.Title, step.Detail)
	}
	console.Blank()

	offerBrowser(cli, deps, console, consoleURL)

	if cli.Setup.Yes {
		res := deps.Checker(path)
		printCheckResult(console, path, res)
		return statusExitCode(res.Status)
	}

	for {
		proceed, err := deps.Prompter.Confirm("Saved the credential file? Check it now", true)
		if err != nil {
			return exitWithError(out, err)
		}
		if !proceed {
			console.Info("Setup left unfinished. Run 'credkit setup' again when the file is in place.")
			return statusExitCode(deps.Checker(path).Status)
		}

		res := deps.Checker(path)
		printCheckResult(console, path, res)
		if res.Status == credfile.StatusValid {
			return ExitValid
		}

		retry, err := deps.Prompter.Confirm("Try again", true)
		if err != nil {
			return exitWithError(out, err)
		}
		if !retry {
			return statusExitCode(res.Status)
		}
		console.Blank()
	}
}

// offerBrowser opens the console URL after confirmation, unless browser
// launching is disabled by flag or environment.
func offerBrowser(cli CLI, deps Dependencies, console *ui.Console, url string) {
	if cli.Setup.NoBrowser || browser.Disabled() {
		console.Info("Open this URL in your browser: " + url)
		return
	}
	if cli.Setup.Yes {
		console.Info("Console URL: " + url)
		return
	}
	open, err := deps.Prompter.Confirm("Open the console in your browser", true)
	if err != nil || !open {
		console.Info("Console URL: " + url)
		return
	}
	if err := deps.Opener.Open(url); err != nil {
		console.Warn("Could not open a browser: " + err.Error())
		console.Info("Open this URL manually: " + url)
	}
}
