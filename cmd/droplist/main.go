// Package main is the entry point for the droplist server.
package main

import (
	"os"

	"github.com/donaldgifford/droplist/cmd/droplist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
