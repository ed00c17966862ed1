package main

import (
	"os"

	"github.com/modrun-cli/modrun/cmd/modrun"
	"github.com/modrun-cli/modrun/pkg/ui"
)

func main() {
	// All terminal output is routed through the UI sink.
	sink := ui.NewTerminal()

	rootCmd := modrun.NewRootCmd(sink)
	if err := rootCmd.Execute(); err != nil {
		// Every fatal category funnels here: configuration failures,
		// usage errors, resolution and execution failures.
		sink.Fatal(err.Error())
		os.Exit(1)
	}
}
