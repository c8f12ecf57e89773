// Where: internal/browser/browser.go
// What: Default-browser launcher.
// Why: Point the human at the console page without reimplementing per-OS openers.
package browser

import (
	"strings"

	"github.com/cli/browser"
	"github.com/credkit/credkit/internal/envutil"
	"github.com/credkit/credkit/internal/meta"
)

// Opener launches a URL in the user's browser.
type Opener interface {
	Open(url string) error
}

// Default opens URLs with the host's default browser.
type Default struct{}

func (Default) Open(url string) error {
	return browser.OpenURL(url)
}

// Disabled reports whether browser launching was turned off via
// CREDKIT_NO_BROWSER. Useful on headless machines where the user copies
// the URL by hand.
func Disabled() bool {
	value := strings.TrimSpace(envutil.GetHostEnv(meta.HostSuffixNoBrowser))
	return value != "" && value != "0" && !strings.EqualFold(value, "false")
}
