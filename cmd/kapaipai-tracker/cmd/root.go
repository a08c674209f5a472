// Package cmd implements the CLI commands for the kapaipai tracker service.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "kapaipai-tracker",
	Short: "Track kapaipai.tw card prices",
	Long: "An API-first service that searches the kapaipai.tw trading card marketplace, " +
		"finds sellers stocking a whole shopping list, and notifies users when a watched " +
		"card's lowest price falls into their target range.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand(), openapiCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
