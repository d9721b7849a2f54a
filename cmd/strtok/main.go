package main

import (
	"github.com/tilt-dev/strtok/internal/cli"
)

// Magic variables set by goreleaser
var version string
var commit string
var date string

func main() {
	cli.SetBuildInfo(cli.BuildInfo{
		Version:   version,
		CommitSHA: commit,
		Date:      date,
	})
	cli.Execute()
}
