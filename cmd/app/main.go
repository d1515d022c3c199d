package main

import (
	"os"

	"github.com/bagdasarian/football-registration/internal/config"
	"github.com/bagdasarian/football-registration/internal/logger"
	"github.com/spf13/cobra"
)

var cfg *config.Config

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "football-registration",
		Short: "Football club registration service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Setup(cfg.Environment, cfg.LogLevel)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newTokenCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
