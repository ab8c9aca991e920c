package main

import (
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

// Version value, injected via go build `ldflags` at build time
var version = "dev"

func init() {
	logging.InstantiateLoggers(logging.WithDefaultLevel(zap.InfoLevel))
}

func main() {
	Run("dhash", "Seeded and secret-keyed xxh3 hashing utility",
		sumCmd,

		ConfigureViper("DHASH"),
		ConfigureVersion(version),
	)
}
