package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jenilutfifauzi/bottomnav/pkg/config"
	"github.com/jenilutfifauzi/bottomnav/pkg/server"
)

// newServeCmd creates the "serve" command.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured navigation",
		Long:  "Serve loads the navigation configuration file and runs the HTTP server until interrupted.",
		RunE:  runServe,
	}
}

// runServe loads the navigation and blocks serving it.
func runServe(cmd *cobra.Command, args []string) error {
	n, err := config.Load(viper.GetString("config"))
	if err != nil {
		return fmt.Errorf("loading navigation: %w", err)
	}

	if p := viper.GetString("default-path"); p != "" {
		n.DefaultPath = p
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return n.Run(ctx, server.WithPort(viper.GetInt("port")))
}
