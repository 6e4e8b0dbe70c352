// Package main is the entry point for the wdbin CLI.
package main

import (
	"os"

	"github.com/thoreinstein/wdbin/cmd/wdbin/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.Report(os.Stderr, err))
	}
}
