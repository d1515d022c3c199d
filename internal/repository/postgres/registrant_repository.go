package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
)

type registrantRepository struct {
	executor DBExecutor
}

func NewRegistrantRepository(db *sql.DB) *registrantRepository {
	return &registrantRepository{executor: db}
}

func NewRegistrantRepositoryWithTx(tx *sql.Tx) *registrantRepository {
	return &registrantRepository{executor: tx}
}

func (r *registrantRepository) Create(ctx context.Context, registrant *domain.Registrant) error {
	query := `
		INSERT INTO registrants (handle, display_name, verified, registered_at, owner_user_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		registrant.Handle,
		registrant.DisplayName,
		registrant.Verified,
		registrant.RegisteredAt,
		nullableInt64(registrant.OwnerUserID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrHandleTaken
		}
		return err
	}

	return nil
}

func (r *registrantRepository) GetByHandle(ctx context.Context, handle string) (*domain.Registrant, error) {
	query := `
		SELECT handle, display_name, verified, registered_at, owner_user_id
		FROM registrants
		WHERE handle = $1
	`

	registrant := &domain.Registrant{}
	var owner sql.NullInt64
	err := r.executor.QueryRowContext(ctx, query, handle).Scan(
		&registrant.Handle,
		&registrant.DisplayName,
		&registrant.Verified,
		&registrant.RegisteredAt,
		&owner,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRegistrantNotFound
		}
		return nil, err
	}

	registrant.OwnerUserID = int64Ptr(owner)

	return registrant, nil
}

func (r *registrantRepository) List(ctx context.Context) ([]*domain.Registrant, error) {
	query := `
		SELECT handle, display_name, verified, registered_at, owner_user_id
		FROM registrants
		ORDER BY registered_at, handle
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrants := make([]*domain.Registrant, 0)
	for rows.Next() {
		registrant := &domain.Registrant{}
		var owner sql.NullInt64
		err := rows.Scan(
			&registrant.Handle,
			&registrant.DisplayName,
			&registrant.Verified,
			&registrant.RegisteredAt,
			&owner,
		)
		if err != nil {
			return nil, err
		}
		registrant.OwnerUserID = int64Ptr(owner)
		registrants = append(registrants, registrant)
	}

	return registrants, rows.Err()
}

func (r *registrantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.executor.QueryRowContext(ctx, "SELECT COUNT(*) FROM registrants").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// rosterLockKey - ключ advisory-блокировки, сериализующей запись в состав
const rosterLockKey int64 = 0x666f6f74

func (r *registrantRepository) LockRoster(ctx context.Context) error {
	_, err := r.executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", rosterLockKey)
	return err
}

func (r *registrantRepository) UpdateName(ctx context.Context, handle string, name string) error {
	result, err := r.executor.ExecContext(
		ctx,
		"UPDATE registrants SET display_name = $2 WHERE handle = $1",
		handle,
		name,
	)
	if err != nil {
		return err
	}

	return requireAffected(result, repository.ErrRegistrantNotFound)
}

func (r *registrantRepository) SetVerified(ctx context.Context, handle string, verified bool) error {
	result, err := r.executor.ExecContext(
		ctx,
		"UPDATE registrants SET verified = $2 WHERE handle = $1",
		handle,
		verified,
	)
	if err != nil {
		return err
	}

	return requireAffected(result, repository.ErrRegistrantNotFound)
}

func (r *registrantRepository) Delete(ctx context.Context, handle string) error {
	result, err := r.executor.ExecContext(ctx, "DELETE FROM registrants WHERE handle = $1", handle)
	if err != nil {
		return err
	}

	return requireAffected(result, repository.ErrRegistrantNotFound)
}

func (r *registrantRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.executor.ExecContext(ctx, "DELETE FROM registrants")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func requireAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
