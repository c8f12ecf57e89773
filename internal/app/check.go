// Where: internal/app/check.go
// What: The check command.
// Why: Report the credential file state with a scriptable exit code.
package app

import (
	"io"

	"github.com/credkit/credkit/internal/credfile"
	"github.com/credkit/credkit/internal/ui"
)

// runCheck evaluates the credential file and narrates the outcome.
// Exit codes: 0 valid, 1 invalid, 2 absent, 3 unreadable.
func runCheck(cli CLI, deps Dependencies, out io.Writer) int {
	path, err := resolveCredentialsPath(cli.Check.File, cli)
	if err != nil {
		return exitWithError(out, err)
	}

	res := deps.Checker(path)
	if !cli.Check.Quiet {
		printCheckResult(ui.NewWithEmoji(out, !cli.NoEmoji), path, res)
	}
	return statusExitCode(res.Status)
}

// printCheckResult renders one check outcome through the console.
func printCheckResult(console *ui.Console, path string, res credfile.Result) {
	console.Header("🔑", "Credential file status")
	console.Item("File", path)
	console.Item("Status", res.Status)
	switch res.Status {
	case credfile.StatusValid:
		console.Success("Credential file is ready to use.")
	case credfile.StatusAbsent:
		console.Info("No credential file found yet.")
	case credfile.StatusInvalid:
		console.Item("Reason", res.Reason)
		console.Error("Credential file is present but not usable.")
	case credfile.StatusUnreadable:
		console.Item("Reason", res.Err)
		console.Error("Credential file could not be read.")
	}
}
