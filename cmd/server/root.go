package main

import (
	"os"

	"resource-hub/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resource-hub",
	Short: "resource and folder organiser",
	Example: `resource-hub serve
resource-hub migrate --schema db/init.sql`,
	SilenceUsage: true,
}

// Execute runs the command selected on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}

// loadConfig reads the configuration and applies its logging section.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := config.SetupLogging(cfg.Log); err != nil {
		return nil, err
	}
	logrus.WithField("component", "main").Debug("configuration loaded")
	return cfg, nil
}
