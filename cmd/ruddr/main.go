package main

import (
	"github.com/tomblancdev/ruddr-go/internal/cli"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cli.Execute(cli.BuildInfo{Version: version, BuildTime: buildTime})
}
