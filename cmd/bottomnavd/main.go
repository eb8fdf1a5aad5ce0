// Command bottomnavd serves a configured bottom navigation: resolved
// item lists as JSON and a server-rendered HTML partial.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jenilutfifauzi/bottomnav/pkg/server"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "bottomnavd",
		Short: "Bottom navigation server",
		Long:  "bottomnavd resolves a configured navigation against request paths and serves the result as JSON and as a server-rendered HTML partial.",
	}

	// Global flags.
	rootCmd.PersistentFlags().Int("port", server.DefaultPort, "Port to listen on")
	rootCmd.PersistentFlags().String("config", "navigation.yaml", "Navigation configuration file")
	rootCmd.PersistentFlags().String("default-path", "", "Path to resolve against when a request carries none")

	// Bind flags to viper.
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("default-path", rootCmd.PersistentFlags().Lookup("default-path"))

	// Env vars: BOTTOMNAV_PORT, BOTTOMNAV_CONFIG, etc.
	viper.SetEnvPrefix("BOTTOMNAV")
	viper.AutomaticEnv()

	// Add commands.
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print bottomnavd version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bottomnavd %s\n", version)
		},
	}
}
