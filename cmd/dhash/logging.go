package main

import (
	"github.com/streamingfast/cli"
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.RootLogger("dhash", "github.com/streamingfast/dhash/cmd/dhash")

func init() {
	cli.SetLogger(zlog, tracer)
}
