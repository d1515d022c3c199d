package main

import (
	"errors"
	"fmt"

	"github.com/bagdasarian/football-registration/internal/auth"
	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		userID  int64
		isAdmin bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return errors.New("--user-id must be positive")
			}

			tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clockwork.NewRealClock())
			token, err := tokens.Issue(domain.Identity{UserID: userID, IsAdmin: isAdmin})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "User id placed in the sub claim")
	cmd.Flags().BoolVar(&isAdmin, "admin", false, "Grant admin rights")

	return cmd
}
