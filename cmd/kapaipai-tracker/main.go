// Package main is the entry point for the kapaipai price tracker service.
package main

import (
	"os"

	"github.com/mong0520/kapaipai-api/cmd/kapaipai-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
