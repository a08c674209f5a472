// Package main is the entry point for the kpp CLI client.
package main

import (
	"github.com/mong0520/kapaipai-api/cmd/kpp/cmd"
)

func main() {
	cmd.Execute()
}
