// Where: internal/interaction/huh.go
// What: Prompter implementation backed by the huh TUI library.
// Why: Give the guided flow keyboard-friendly prompts on a real terminal.
package interaction

import (
	"os"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
// When stdin is not a terminal it degrades to plain line-based prompts so
// scripted runs still work.
type HuhPrompter struct{}

func (p HuhPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	if !IsTerminal(os.Stdin) {
		return PromptYesNo(title)
	}
	confirmed := defaultYes
	err := huh.NewConfirm().
		Title(title).
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}
