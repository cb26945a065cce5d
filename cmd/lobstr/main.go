// Package main is the entry point for the lobstr CLI.
package main

import (
	"os"

	"github.com/f3rmion/lobstr/cmd/lobstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
