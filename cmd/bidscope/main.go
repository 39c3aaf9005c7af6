// Package main is the entry point for the bidscope CLI/TUI.
package main

import (
	"os"

	"github.com/bidscope-io/bidscope/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
