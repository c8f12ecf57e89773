// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep identity and layout conventions in one place.
package meta

const (
	// Project Identity
	AppName   = "credkit"
	Slug      = "credkit"
	EnvPrefix = "CREDKIT"

	// Directory Layout
	HomeDir = ".credkit"

	// Credential File Conventions
	DefaultCredentialsFile = "credentials.json"

	// ConsoleCredentialsURL is where a human creates an OAuth client ID
	// and downloads the credential file. The tool never talks to this
	// endpoint itself; it only points a browser at it.
	ConsoleCredentialsURL = "https://console.cloud.google.com/apis/credentials"

	// Host Environment Suffixes
	HostSuffixConfigPath = "CONFIG_PATH"
	HostSuffixConfigHome = "CONFIG_HOME"
	HostSuffixNoBrowser  = "NO_BROWSER"
)
