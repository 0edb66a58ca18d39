// Package main is the entry point for the reword CLI.
package main

import (
	"os"

	"github.com/f3rmion/reword/cmd/reword/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
