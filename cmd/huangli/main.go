// Command huangli prints the Chinese Huangli almanac and serves it over MCP.
package main

import (
	"os"

	// Embedded zoneinfo so IANA names resolve on hosts without it.
	_ "time/tzdata"

	"github.com/custodia-labs/huangli/internal/adapters/driving/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
