// Where: cmd/credkit/main.go
// What: CLI entrypoint.
// Why: Execute credkit commands with configured dependencies.
package main

import (
	"os"

	"github.com/credkit/credkit/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
