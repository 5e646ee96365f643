// Command sqlitehost is a reference host application that starts with the
// sqlite plugin registered and reports the resulting pool.
package main

import (
	"os"

	"github.com/custodia-labs/sercha-sqlite/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
