// Where: internal/envutil/envutil.go
// What: Helpers for prefixed host-level environment variables.
// Why: Keep the CREDKIT_* naming convention in one place.
package envutil

import (
	"os"
	"strings"

	"github.com/credkit/credkit/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining ENV_PREFIX with the given suffix.
// Example: HostEnvKey("CONFIG_PATH") returns "CREDKIT_CONFIG_PATH".
func HostEnvKey(suffix string) string {
	prefix := strings.TrimSpace(os.Getenv("ENV_PREFIX"))
	if prefix == "" {
		prefix = meta.EnvPrefix
	}
	return prefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("CONFIG_PATH") returns the value of CREDKIT_CONFIG_PATH.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// SetHostEnv sets a host-level environment variable.
func SetHostEnv(suffix, value string) {
	_ = os.Setenv(HostEnvKey(suffix), value)
}
