package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
)

type banRepository struct {
	executor DBExecutor
}

func NewBanRepository(db *sql.DB) *banRepository {
	return &banRepository{executor: db}
}

func NewBanRepositoryWithTx(tx *sql.Tx) *banRepository {
	return &banRepository{executor: tx}
}

// Upsert заменяет предыдущий бан с тем же логином
func (r *banRepository) Upsert(ctx context.Context, ban *domain.Ban) error {
	query := `
		INSERT INTO bans (handle, display_name, reason, banned_at, banned_until, owner_user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (handle) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			reason = EXCLUDED.reason,
			banned_at = EXCLUDED.banned_at,
			banned_until = EXCLUDED.banned_until,
			owner_user_id = EXCLUDED.owner_user_id
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		ban.Handle,
		ban.DisplayName,
		ban.Reason,
		ban.BannedAt,
		ban.BannedUntil,
		nullableInt64(ban.OwnerUserID),
	)
	return err
}

func (r *banRepository) GetActive(ctx context.Context, handle string, now time.Time) (*domain.Ban, error) {
	query := `
		SELECT handle, display_name, reason, banned_at, banned_until, owner_user_id
		FROM bans
		WHERE handle = $1 AND banned_until > $2
	`

	ban, err := scanBan(r.executor.QueryRowContext(ctx, query, handle, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrBanNotFound
		}
		return nil, err
	}

	return ban, nil
}

func (r *banRepository) List(ctx context.Context) ([]*domain.Ban, error) {
	query := `
		SELECT handle, display_name, reason, banned_at, banned_until, owner_user_id
		FROM bans
		ORDER BY banned_until DESC
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBans(rows)
}

func (r *banRepository) ListActive(ctx context.Context, now time.Time) ([]*domain.Ban, error) {
	query := `
		SELECT handle, display_name, reason, banned_at, banned_until, owner_user_id
		FROM bans
		WHERE banned_until > $1
		ORDER BY banned_until
	`

	rows, err := r.executor.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBans(rows)
}

func (r *banRepository) Delete(ctx context.Context, handle string) error {
	result, err := r.executor.ExecContext(ctx, "DELETE FROM bans WHERE handle = $1", handle)
	if err != nil {
		return err
	}

	return requireAffected(result, repository.ErrBanNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBan(row rowScanner) (*domain.Ban, error) {
	ban := &domain.Ban{}
	var owner sql.NullInt64
	err := row.Scan(
		&ban.Handle,
		&ban.DisplayName,
		&ban.Reason,
		&ban.BannedAt,
		&ban.BannedUntil,
		&owner,
	)
	if err != nil {
		return nil, err
	}
	ban.OwnerUserID = int64Ptr(owner)
	return ban, nil
}

func scanBans(rows *sql.Rows) ([]*domain.Ban, error) {
	bans := make([]*domain.Ban, 0)
	for rows.Next() {
		ban, err := scanBan(rows)
		if err != nil {
			return nil, err
		}
		bans = append(bans, ban)
	}
	return bans, rows.Err()
}
