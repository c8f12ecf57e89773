// Where: internal/app/config_cmd.go
// What: Configuration management commands.
// Why: Allow setting the credential path and console URL.
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/credkit/credkit/internal/config"
	"github.com/credkit/credkit/internal/ui"
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	Show    ConfigShowCmd    `cmd:"" default:"1" help:"Show the effective configuration"`
	SetPath ConfigSetPathCmd `cmd:"" name:"set-path" help:"Set the credential file path"`
	SetURL  ConfigSetURLCmd  `cmd:"" name:"set-url" help:"Set the provider console URL"`
}

type ConfigShowCmd struct{}

type ConfigSetPathCmd struct {
	Path string `arg:"" help:"Path to the credential file"`
}

type ConfigSetURLCmd struct {
	URL string `arg:"" help:"Provider console credentials URL"`
}

// runConfigShow prints the effective configuration and where it came from.
func runConfigShow(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.NewWithEmoji(out, !cli.NoEmoji)

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("⚙️", "Configuration")
	console.Item("Config file", path)
	console.Item("Credentials path", cfg.EffectiveCredentialsPath())
	console.Item("Console URL", cfg.EffectiveConsoleURL())
	return 0
}

// runConfigSetPath updates the global configuration with the credential
// file path. Relative paths are made absolute so later invocations from
// other directories still find the file.
func runConfigSetPath(cli CLI, _ Dependencies, out io.Writer) int {
	absPath, err := filepath.Abs(cli.Config.SetPath.Path)
	if err != nil {
		return exitWithError(out, err)
	}

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return exitWithError(out, err)
	}

	cfg.CredentialsPath = absPath
	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "updated credentials_path: %s\n", absPath)
	return 0
}

// runConfigSetURL updates the global configuration with the console URL.
func runConfigSetURL(cli CLI, _ Dependencies, out io.Writer) int {
	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return exitWithError(out, err)
	}

	cfg.ConsoleURL = cli.Config.SetURL.URL
	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "updated console_url: %s\n", cli.Config.SetURL.URL)
	return 0
}
