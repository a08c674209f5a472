// Package main generates CLI reference documentation for the kpp client and
// the kapaipai-tracker service.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	kpp "github.com/mong0520/kapaipai-api/cmd/kpp/cmd"
	tracker "github.com/mong0520/kapaipai-api/cmd/kapaipai-tracker/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated docs")
	format := flag.String("format", "markdown", "output format (markdown, yaml)")
	flag.Parse()

	roots := map[string]*cobra.Command{
		"kpp":              kpp.Root(),
		"kapaipai-tracker": tracker.Root(),
	}

	for name, root := range roots {
		dir := filepath.Join(*output, name)
		if err := generate(root, dir, *format); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
		fmt.Printf("%s docs generated in %s/\n", name, dir)
	}
}

func generate(root *cobra.Command, dir, format string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root.DisableAutoGenTag = true

	switch format {
	case "markdown":
		return doc.GenMarkdownTree(root, dir)
	case "yaml":
		return doc.GenYamlTree(root, dir)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
