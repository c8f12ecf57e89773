// Where: internal/app/setup_test.go
// What: Tests for the guided setup flow.
// Why: Verify the retry loop, browser gating, and non-interactive mode.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/credkit/credkit/internal/config"
	"github.com/credkit/credkit/internal/credfile"
)

// configureCredentialsPath points the global config at path.
func configureCredentialsPath(t *testing.T, home, path string) {
	t.Helper()
	cfg := config.DefaultGlobalConfig()
	cfg.CredentialsPath = path
	if err := config.SaveGlobalConfig(filepath.Join(home, "config.yaml"), cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
}

func TestSetupAlreadyValid(t *testing.T) {
	home := testConfigHome(t)
	path := writeTestFile(t, `{"client_id": "abc", "client_secret": "xyz"}`)
	configureCredentialsPath(t, home, path)

	var buf bytes.Buffer
	prompter := &scriptedPrompter{}
	code := Run([]string{"setup"}, Dependencies{Out: &buf, Prompter: prompter})
	if code != ExitValid {
		t.Fatalf("expected valid exit code, got %d: %s", code, buf.String())
	}
	if prompter.calls != 0 {
		t.Fatalf("no prompts expected for an already valid file, got %d", prompter.calls)
	}
	if !strings.Contains(buf.String(), "already present") {
		t.Fatalf("missing short-circuit narration: %s", buf.String())
	}
}

func TestSetupSucceedsAfterRetry(t *testing.T) {
	home := testConfigHome(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	configureCredentialsPath(t, home, path)

	// The file appears (invalid) before the first check and is fixed
	// before the retry, mimicking the human completing the download.
	writes := []string{"", `{"client_id": "abc"}`, `{"client_id": "abc", "client_secret": "xyz"}`}
	checks := 0
	checker := func(p string) credfile.Result {
		if checks < len(writes) && writes[checks] != "" {
			if err := os.WriteFile(path, []byte(writes[checks]), 0o600); err != nil {
				t.Fatalf("write file: %v", err)
			}
		}
		checks++
		return credfile.Check(p)
	}

	prompter := &scriptedPrompter{confirms: []bool{
		false, // do not open the browser
		true,  // check now -> invalid
		true,  // try again
		true,  // check now -> valid
	}}

	var buf bytes.Buffer
	code := Run([]string{"setup"}, Dependencies{
		Out:      &buf,
		Prompter: prompter,
		Checker:  checker,
	})
	if code != ExitValid {
		t.Fatalf("expected valid exit code, got %d: %s", code, buf.String())
	}
	if prompter.calls != 4 {
		t.Fatalf("unexpected prompt count: %d", prompter.calls)
	}
	if !strings.Contains(buf.String(), "Manual credential setup") {
		t.Fatalf("missing instructions header: %s", buf.String())
	}
}

func TestSetupYesNonInteractive(t *testing.T) {
	home := testConfigHome(t)
	path := filepath.Join(t.TempDir(), "credentials.json")
	configureCredentialsPath(t, home, path)

	var buf bytes.Buffer
	prompter := &scriptedPrompter{}
	opener := &fakeOpener{}
	code := Run([]string{"setup", "--yes"}, Dependencies{Out: &buf, Prompter: prompter, Opener: opener})
	if code != ExitAbsent {
		t.Fatalf("expected absent exit code, got %d: %s", code, buf.String())
	}
	if prompter.calls != 0 {
		t.Fatalf("--yes must not prompt, got %d prompts", prompter.calls)
	}
	if len(opener.urls) != 0 {
		t.Fatalf("--yes must not open a browser, opened %v", opener.urls)
	}
	if !strings.Contains(buf.String(), "Console URL") {
		t.Fatalf("missing console url fallback: %s", buf.String())
	}
}

func TestSetupOpensBrowserOnConfirm(t *testing.T) {
	home := testConfigHome(t)
	path := filepath.Join(t.TempDir(), "credentials.json")
	configureCredentialsPath(t, home, path)

	prompter := &scriptedPrompter{confirms: []bool{
		true,  // open the browser
		false, // do not check yet
	}}
	opener := &fakeOpener{}

	var buf bytes.Buffer
	code := Run([]string{"setup"}, Dependencies{Out: &buf, Prompter: prompter, Opener: opener})
	if code != ExitAbsent {
		t.Fatalf("expected absent exit code, got %d", code)
	}
	if len(opener.urls) != 1 {
		t.Fatalf("expected one browser launch, got %v", opener.urls)
	}
}
