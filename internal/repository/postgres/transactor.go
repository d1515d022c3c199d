package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/football-registration/internal/repository"
)

type transactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) *transactor {
	return &transactor{db: db}
}

func (t *transactor) RunInTx(ctx context.Context, fn func(tx repository.TxRepositories) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	repos := repository.TxRepositories{
		Registrants: NewRegistrantRepositoryWithTx(tx),
		Bans:        NewBanRepositoryWithTx(tx),
		AdminLogs:   NewAdminLogRepositoryWithTx(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
