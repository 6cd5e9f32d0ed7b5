// Package cmd implements the dropctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/droplist/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "dropctl",
		Short: "CLI client for droplist",
		Long: "dropctl is a command-line client for the droplist API.\n" +
			"It lets you turn photos into drafts, review and publish them,\n" +
			"manage live listings, and connect your eBay account.",
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
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.dropctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("token", "", "bearer token for the API")
	rootCmd.PersistentFlags().
		String("user", "", "user id sent as X-User-ID when the server runs with auth disabled")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	for _, name := range []string{"server", "token", "user", "output"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}

	rootCmd.AddCommand(draftsCmd())
	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(ebayCmd())
	rootCmd.AddCommand(quotaCmd())
	rootCmd.AddCommand(priceCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dropctl")
	}

	viper.SetEnvPrefix("DROPCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	var opts []apiclient.Option
	if token := viper.GetString("token"); token != "" {
		opts = append(opts, apiclient.WithToken(token))
	}
	if user := viper.GetString("user"); user != "" {
		opts = append(opts, apiclient.WithUserID(user))
	}
	return apiclient.New(viper.GetString("server"), opts...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
