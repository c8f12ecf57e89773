// Where: cmd/credkit/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/credkit/credkit/internal/app"
	"github.com/credkit/credkit/internal/browser"
	"github.com/credkit/credkit/internal/credfile"
	"github.com/credkit/credkit/internal/interaction"
)

// buildDependencies constructs all runtime dependencies required by the CLI:
// the credential checker, the interactive prompter, and the browser opener.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:             os.Stdout,
		ErrOut:          os.Stderr,
		Prompter:        interaction.HuhPrompter{},
		Opener:          browser.Default{},
		Checker:         credfile.Check,
		Inspector:       credfile.Inspect,
		StrictValidator: credfile.ValidateStrict,
	}
}
