// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/credkit/credkit/internal/browser"
	"github.com/credkit/credkit/internal/config"
	"github.com/credkit/credkit/internal/credfile"
	"github.com/credkit/credkit/internal/interaction"
	"github.com/credkit/credkit/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	Out             io.Writer
	ErrOut          io.Writer
	Prompter        interaction.Prompter
	Opener          browser.Opener
	Checker         func(string) credfile.Result
	Inspector       func(string) credfile.Report
	StrictValidator func(string) error
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Path    string `short:"p" help:"Credential file path (default: from config)"`
	NoEmoji bool   `name:"no-emoji" help:"Disable emoji in output"`
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Check   CheckCmd   `cmd:"" help:"Check the local credential file"`
	Setup   SetupCmd   `cmd:"" help:"Guided credential setup"`
	Inspect InspectCmd `cmd:"" help:"Detailed credential file report"`
	Open    OpenCmd    `cmd:"" help:"Open the provider console in a browser"`
	Config  ConfigCmd  `cmd:"" name:"config" help:"Manage configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

type (
	CheckCmd struct {
		File  string `arg:"" optional:"" help:"Credential file path (overrides config)"`
		Quiet bool   `short:"q" help:"Suppress output; rely on the exit code"`
	}
	InspectCmd struct {
		File   string `arg:"" optional:"" help:"Credential file path (overrides config)"`
		Strict bool   `help:"Additionally validate against the strict schema"`
	}
)

type SetupCmd struct {
	Yes       bool `short:"y" help:"Skip prompts; print instructions and check once"`
	NoBrowser bool `name:"no-browser" help:"Do not offer to open the browser"`
}

type OpenCmd struct{}

// Exit codes for the check contract. Scripts branch on these.
const (
	ExitValid      = 0
	ExitInvalid    = 1
	ExitAbsent     = 2
	ExitUnreadable = 3
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	deps = withDefaults(deps)

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// Handle no arguments: show the current credential status and a hint.
	if len(args) == 0 {
		return runNoArgs(deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"check":       runCheck,
		"setup":       runSetup,
		"inspect":     runInspect,
		"open":        runOpen,
		"config":      runConfigShow,
		"config show": runConfigShow,
		"version":     func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "check", handler: runCheck},
		{prefix: "inspect", handler: runInspect},
		{prefix: "config set-path", handler: runConfigSetPath},
		{prefix: "config set-url", handler: runConfigSetURL},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// runNoArgs handles invocation without arguments: a status summary plus a
// pointer at the guided flow when the file is not usable yet.
func runNoArgs(deps Dependencies, out io.Writer) int {
	code := runCheck(CLI{}, deps, out)
	if code != ExitValid {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'credkit setup' for a guided walkthrough.")
	}
	return code
}

// withDefaults fills in production implementations for any dependency the
// caller left nil.
func withDefaults(deps Dependencies) Dependencies {
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.HuhPrompter{}
	}
	if deps.Opener == nil {
		deps.Opener = browser.Default{}
	}
	if deps.Checker == nil {
		deps.Checker = credfile.Check
	}
	if deps.Inspector == nil {
		deps.Inspector = credfile.Inspect
	}
	if deps.StrictValidator == nil {
		deps.StrictValidator = credfile.ValidateStrict
	}
	return deps
}

// exitWithError prints an error and returns a non-zero exit code.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}

// loadGlobalConfigWithPath resolves the global config path and loads it,
// falling back to defaults when the file does not exist yet.
func loadGlobalConfigWithPath() (string, config.GlobalConfig, error) {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return "", config.GlobalConfig{}, err
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, config.DefaultGlobalConfig(), nil
		}
		return "", config.GlobalConfig{}, err
	}
	return path, cfg, nil
}

// resolveCredentialsPath picks the credential file path: explicit argument,
// then the global -p flag, then the configured (or conventional) path.
func resolveCredentialsPath(explicit string, cli CLI) (string, error) {
	if path := strings.TrimSpace(explicit); path != "" {
		return path, nil
	}
	if path := strings.TrimSpace(cli.Path); path != "" {
		return path, nil
	}
	_, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return "", err
	}
	return cfg.EffectiveCredentialsPath(), nil
}

// statusExitCode maps a check status to the CLI exit code contract.
func statusExitCode(status credfile.Status) int {
	switch status {
	case credfile.StatusValid:
		return ExitValid
	case credfile.StatusAbsent:
		return ExitAbsent
	case credfile.StatusUnreadable:
		return ExitUnreadable
	}
	return ExitInvalid
}
