// Package main generates the dropctl CLI reference and the droplist
// OpenAPI document.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/droplist/cmd/dropctl/cmd"
	"github.com/donaldgifford/droplist/internal/api/router"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	openapi := flag.String("openapi", "docs/openapi.yaml", "path for the generated OpenAPI document (empty to skip)")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, *output); err != nil {
		log.Fatalf("generating docs: %v", err)
	}
	fmt.Printf("CLI docs generated in %s/\n", *output)

	if *openapi == "" {
		return
	}
	// Route registration needs no live services.
	_, api := router.New(router.Deps{})
	spec, err := api.OpenAPI().YAML()
	if err != nil {
		log.Fatalf("rendering OpenAPI: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*openapi), 0o750); err != nil {
		log.Fatalf("creating OpenAPI directory: %v", err)
	}
	if err := os.WriteFile(*openapi, spec, 0o600); err != nil {
		log.Fatalf("writing OpenAPI: %v", err)
	}
	fmt.Printf("OpenAPI document written to %s\n", *openapi)
}
