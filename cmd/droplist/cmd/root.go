// Package cmd implements the CLI commands for the droplist server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "droplist",
	Short: "Turn item photos into eBay listings",
	Long: "An API-first service that analyzes item photos into listing drafts, " +
		"publishes reviewed drafts to eBay through the Sell APIs, and keeps a local " +
		"mirror of the seller's offers in sync.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
