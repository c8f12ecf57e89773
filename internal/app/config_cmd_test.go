// Where: internal/app/config_cmd_test.go
// What: Tests for configuration commands.
// Why: Ensure set-path/set-url persist and show reports them.
package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigSetPathThenShow(t *testing.T) {
	testConfigHome(t)
	target := filepath.Join(t.TempDir(), "credentials.json")

	var buf bytes.Buffer
	if code := Run([]string{"config", "set-path", target}, Dependencies{Out: &buf}); code != 0 {
		t.Fatalf("set-path exited %d: %s", code, buf.String())
	}

	buf.Reset()
	if code := Run([]string{"config", "show"}, Dependencies{Out: &buf}); code != 0 {
		t.Fatalf("show exited %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), target) {
		t.Fatalf("configured path missing from show output: %s", buf.String())
	}
}

func TestConfigSetURL(t *testing.T) {
	testConfigHome(t)
	url := "https://console.example.com/apis/credentials"

	var buf bytes.Buffer
	if code := Run([]string{"config", "set-url", url}, Dependencies{Out: &buf}); code != 0 {
		t.Fatalf("set-url exited %d: %s", code, buf.String())
	}

	buf.Reset()
	if code := Run([]string{"config"}, Dependencies{Out: &buf}); code != 0 {
		t.Fatalf("config default exited %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), url) {
		t.Fatalf("configured url missing from show output: %s", buf.String())
	}
}
