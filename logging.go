package dhash

import (
	"github.com/streamingfast/cli"
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.PackageLogger("dhash", "github.com/streamingfast/dhash")

func init() {
	cli.SetLogger(zlog, tracer)
}
