// Where: internal/app/open.go
// What: The open command.
// Why: Jump straight to the provider console page.
package app

import (
	"io"

	"github.com/credkit/credkit/internal/browser"
	"github.com/credkit/credkit/internal/ui"
)

// runOpen launches the configured console URL in the default browser, or
// prints it when launching is disabled.
func runOpen(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.NewWithEmoji(out, !cli.NoEmoji)

	_, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return exitWithError(out, err)
	}
	url := cfg.EffectiveConsoleURL()

	if browser.Disabled() {
		console.Info("Browser launching is disabled. Open this URL manually:")
		console.ItemPlain(url)
		return 0
	}

	if err := deps.Opener.Open(url); err != nil {
		console.Warn("Could not open a browser: " + err.Error())
		console.ItemPlain(url)
		return 1
	}
	console.Success("Opened " + url)
	return 0
}
