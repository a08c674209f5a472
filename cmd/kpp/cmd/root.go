// Package cmd implements the kpp CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/mong0520/kapaipai-api/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "kpp",
		Short: "CLI client for the kapaipai price tracker",
		Long: "kpp is a command-line client for the kapaipai price tracker API.\n" +
			"It searches cards, finds sellers stocking a whole shopping list,\n" +
			"and manages price watches from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.kpp.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("user", "", "user ID for watches and notifications")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user")))

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(matchCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(notificationsCmd())
	rootCmd.AddCommand(jobsCmd())
	rootCmd.AddCommand(priceCheckCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kpp")
	}

	viper.SetEnvPrefix("KPP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

func userID() string {
	return viper.GetString("user")
}
