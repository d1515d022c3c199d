package main

import (
	"github.com/bagdasarian/football-registration/internal/db"
	"github.com/bagdasarian/football-registration/migrations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			database := db.MustLoad(cmd.Context(), cfg)
			defer database.Close()

			if err := db.Migrate(database, migrations.FS); err != nil {
				return err
			}
			log.Info().Msg("migrations applied")
			return nil
		},
	}
}
