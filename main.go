package main

import (
	"os"

	"prreviewer/cmd"
	"prreviewer/internal/ui"
)

// Build-time variables (set via -ldflags)
var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commitHash, buildDate)

	if err := cmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		os.Exit(1)
	}
}
