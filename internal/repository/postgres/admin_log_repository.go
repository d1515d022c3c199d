package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/football-registration/internal/domain"
)

type adminLogRepository struct {
	executor DBExecutor
}

func NewAdminLogRepository(db *sql.DB) *adminLogRepository {
	return &adminLogRepository{executor: db}
}

func NewAdminLogRepositoryWithTx(tx *sql.Tx) *adminLogRepository {
	return &adminLogRepository{executor: tx}
}

func (r *adminLogRepository) Create(ctx context.Context, entry *domain.AdminLog) error {
	query := `
		INSERT INTO admin_logs (actor_user_id, action, target_user, target_name, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		nullableInt64(entry.ActorUserID),
		entry.Action,
		entry.TargetUser,
		entry.TargetName,
		entry.Details,
		entry.CreatedAt,
	).Scan(&entry.ID)
}

func (r *adminLogRepository) List(ctx context.Context, limit int) ([]*domain.AdminLog, error) {
	query := `
		SELECT id, actor_user_id, action, target_user, target_name, details, created_at
		FROM admin_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.executor.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]*domain.AdminLog, 0)
	for rows.Next() {
		entry := &domain.AdminLog{}
		var actor sql.NullInt64
		err := rows.Scan(
			&entry.ID,
			&actor,
			&entry.Action,
			&entry.TargetUser,
			&entry.TargetName,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entry.ActorUserID = int64Ptr(actor)
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}
