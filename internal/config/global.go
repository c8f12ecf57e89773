// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.credkit/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/credkit/credkit/internal/envutil"
	"github.com/credkit/credkit/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.credkit/config.yaml global configuration.
// It records where the credential file lives and which console URL the
// guided flow points at.
type GlobalConfig struct {
	Version         int    `yaml:"version"`
	CredentialsPath string `yaml:"credentials_path,omitempty"`
	ConsoleURL      string `yaml:"console_url,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version: 1,
	}
}

// EffectiveCredentialsPath returns the configured credential file path, or
// the conventional default when the config does not set one.
func (c GlobalConfig) EffectiveCredentialsPath() string {
	if path := strings.TrimSpace(c.CredentialsPath); path != "" {
		return path
	}
	return meta.DefaultCredentialsFile
}

// EffectiveConsoleURL returns the configured console URL, or the
// conventional default when the config does not set one.
func (c GlobalConfig) EffectiveConsoleURL() string {
	if url := strings.TrimSpace(c.ConsoleURL); url != "" {
		return url
	}
	return meta.ConsoleCredentialsURL
}

// GlobalConfigPath returns the path to the global config file.
// Respects brand-specific CONFIG_PATH and CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(meta.HostSuffixConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(envutil.GetHostEnv(meta.HostSuffixConfigHome)); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
