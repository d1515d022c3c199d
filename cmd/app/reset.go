package main

import (
	"fmt"

	"github.com/bagdasarian/football-registration/internal/db"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// newResetCmd - ручной запуск того же сброса, что выполняет планировщик
func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove every registration from the current list",
		RunE: func(cmd *cobra.Command, args []string) error {
			database := db.MustLoad(cmd.Context(), cfg)
			defer database.Close()

			services := buildServices(database, clockwork.NewRealClock())
			removed, err := services.registration.Reset(cmd.Context(), nil)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %d registrations\n", removed)
			return nil
		},
	}
}
