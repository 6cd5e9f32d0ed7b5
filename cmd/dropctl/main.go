// Package main is the entry point for the dropctl CLI client.
package main

import (
	"github.com/donaldgifford/droplist/cmd/dropctl/cmd"
)

func main() {
	cmd.Execute()
}
