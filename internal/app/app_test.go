// Where: internal/app/app_test.go
// What: Tests for the command dispatcher.
// Why: Pin down dispatch, exit codes, and the no-args summary.
package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/credkit/credkit/internal/config"
	"github.com/credkit/credkit/internal/credfile"
)

// testConfigHome isolates the global config in a temp dir and returns it.
func testConfigHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("ENV_PREFIX", "")
	t.Setenv("CREDKIT_CONFIG_PATH", "")
	t.Setenv("CREDKIT_CONFIG_HOME", home)
	return home
}

// scriptedPrompter answers confirmations from a fixed script.
type scriptedPrompter struct {
	confirms []bool
	calls    int
}

func (p *scriptedPrompter) Confirm(string, bool) (bool, error) {
	if p.calls >= len(p.confirms) {
		return false, errors.New("prompter script exhausted")
	}
	answer := p.confirms[p.calls]
	p.calls++
	return answer, nil
}

func (p *scriptedPrompter) Input(string, []string) (string, error) {
	return "", errors.New("input not scripted")
}

// fakeOpener records opened URLs.
type fakeOpener struct {
	urls []string
	err  error
}

func (o *fakeOpener) Open(url string) error {
	o.urls = append(o.urls, url)
	return o.err
}

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestRunVersion(t *testing.T) {
	testConfigHome(t)
	var buf bytes.Buffer

	if code := Run([]string{"version"}, Dependencies{Out: &buf}); code != 0 {
		t.Fatalf("version exited %d", code)
	}
	if strings.TrimSpace(buf.String()) == "" {
		t.Fatal("version printed nothing")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	testConfigHome(t)
	var buf bytes.Buffer

	if code := Run([]string{"bogus"}, Dependencies{Out: &buf}); code != 1 {
		t.Fatalf("unknown command exited %d", code)
	}
}

func TestRunNoArgsShowsSetupHint(t *testing.T) {
	home := testConfigHome(t)
	missing := filepath.Join(t.TempDir(), "credentials.json")
	cfgPath := filepath.Join(home, "config.yaml")
	cfg := config.DefaultGlobalConfig()
	cfg.CredentialsPath = missing
	if err := config.SaveGlobalConfig(cfgPath, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	var buf bytes.Buffer
	code := Run(nil, Dependencies{Out: &buf})
	if code != ExitAbsent {
		t.Fatalf("expected absent exit code, got %d", code)
	}
	if !strings.Contains(buf.String(), "credkit setup") {
		t.Fatalf("missing setup hint: %s", buf.String())
	}
}

func TestStatusExitCodes(t *testing.T) {
	cases := map[credfile.Status]int{
		credfile.StatusValid:      ExitValid,
		credfile.StatusInvalid:    ExitInvalid,
		credfile.StatusAbsent:     ExitAbsent,
		credfile.StatusUnreadable: ExitUnreadable,
	}
	for status, want := range cases {
		if got := statusExitCode(status); got != want {
			t.Fatalf("exit code for %s = %d, want %d", status, got, want)
		}
	}
}
