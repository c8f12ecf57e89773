// Where: internal/app/inspect.go
// What: The inspect command.
// Why: Show a detailed, redacted report of the credential file.
package app

import (
	"io"

	"github.com/credkit/credkit/internal/credfile"
	"github.com/credkit/credkit/internal/ui"
	"sigs.k8s.io/yaml"
)

// runInspect prints the full report as YAML. With --strict it additionally
// validates the file against the embedded schema; a strict failure turns an
// otherwise valid result into the invalid exit code.
func runInspect(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.NewWithEmoji(out, !cli.NoEmoji)

	path, err := resolveCredentialsPath(cli.Inspect.File, cli)
	if err != nil {
		return exitWithError(out, err)
	}

	report := deps.Inspector(path)
	payload, err := yaml.Marshal(report)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🔍", "Credential file report")
	console.Blank()
	if _, err := out.Write(payload); err != nil {
		return exitWithError(out, err)
	}
	console.Blank()

	if report.HasEnvelope && report.GoogleParsable {
		console.Warn("This looks like a console download in wrapped form (installed/web envelope).")
		console.ItemPlain("Copy client_id and client_secret to the top level of the file.")
	}

	code := statusExitCode(statusFromLabel(report.Status))
	if cli.Inspect.Strict && code == ExitValid {
		if err := deps.StrictValidator(path); err != nil {
			console.Error(err.Error())
			return ExitInvalid
		}
		console.Success("Strict schema validation passed.")
	}
	return code
}

// statusFromLabel maps a report's status label back to the checker status.
func statusFromLabel(label string) credfile.Status {
	switch label {
	case "absent":
		return credfile.StatusAbsent
	case "valid":
		return credfile.StatusValid
	case "unreadable":
		return credfile.StatusUnreadable
	}
	return credfile.StatusInvalid
}
