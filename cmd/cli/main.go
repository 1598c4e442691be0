// smartlog - SMART Disk-Health Log Viewer
//
// smartlog parses semicolon-delimited SMART disk-health logs and renders
// summaries and time-series charts of selected attributes.
package main

import (
	"os"

	"smartlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
