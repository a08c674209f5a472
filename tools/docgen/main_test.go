package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func testRoot() *cobra.Command {
	root := &cobra.Command{Use: "demo", Short: "demo root"}
	root.AddCommand(&cobra.Command{Use: "child", Short: "demo child", Run: func(*cobra.Command, []string) {}})
	return root
}

func TestGenerate(t *testing.T) {
	for _, tt := range []struct {
		format string
		file   string
	}{
		{"markdown", "demo_child.md"},
		{"yaml", "demo_child.yaml"},
	} {
		t.Run(tt.format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			if err := generate(testRoot(), dir, tt.format); err != nil {
				t.Fatalf("generate: %v", err)
			}
			if _, err := os.Stat(filepath.Join(dir, tt.file)); err != nil {
				t.Errorf("expected %s: %v", tt.file, err)
			}
		})
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	if err := generate(testRoot(), t.TempDir(), "man"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
