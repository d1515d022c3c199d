package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
)

type feedbackRepository struct {
	executor DBExecutor
}

func NewFeedbackRepository(db *sql.DB) *feedbackRepository {
	return &feedbackRepository{executor: db}
}

const feedbackSelect = `
	SELECT
		fs.id,
		fs.user_id,
		fs.type,
		fs.title,
		fs.description,
		fs.status,
		fs.is_approved,
		COALESCE(SUM(CASE WHEN fv.vote_type = 'upvote' THEN 1 ELSE 0 END), 0) AS upvotes,
		COALESCE(SUM(CASE WHEN fv.vote_type = 'downvote' THEN 1 ELSE 0 END), 0) AS downvotes,
		fs.created_at,
		fs.updated_at
	FROM feedback_submissions fs
	LEFT JOIN feedback_votes fv ON fs.id = fv.feedback_id
`

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	query := `
		INSERT INTO feedback_submissions (user_id, type, title, description, status, is_approved, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
		RETURNING id, created_at
	`

	if feedback.Status == "" {
		feedback.Status = domain.FeedbackPending
	}

	return r.executor.QueryRowContext(
		ctx,
		query,
		feedback.AuthorID,
		string(feedback.Type),
		feedback.Title,
		feedback.Description,
		string(feedback.Status),
		time.Now(),
	).Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *feedbackRepository) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	query := feedbackSelect + `
		WHERE fs.id = $1
		GROUP BY fs.id
	`

	feedback, err := scanFeedback(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrFeedbackNotFound
		}
		return nil, err
	}

	return feedback, nil
}

func (r *feedbackRepository) ListApproved(ctx context.Context, feedbackType *domain.FeedbackType) ([]*domain.Feedback, error) {
	query := feedbackSelect + `
		WHERE fs.is_approved = TRUE AND ($1::text IS NULL OR fs.type = $1)
		GROUP BY fs.id
		ORDER BY (COALESCE(SUM(CASE WHEN fv.vote_type = 'upvote' THEN 1 WHEN fv.vote_type = 'downvote' THEN -1 ELSE 0 END), 0)) DESC,
			fs.created_at DESC
	`

	var typeFilter sql.NullString
	if feedbackType != nil {
		typeFilter = sql.NullString{String: string(*feedbackType), Valid: true}
	}

	rows, err := r.executor.QueryContext(ctx, query, typeFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

func (r *feedbackRepository) ListAll(ctx context.Context) ([]*domain.Feedback, error) {
	query := feedbackSelect + `
		GROUP BY fs.id
		ORDER BY fs.created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

func (r *feedbackRepository) Moderate(ctx context.Context, id int64, approved bool, moderatorID int64) error {
	status := domain.FeedbackRejected
	if approved {
		status = domain.FeedbackApproved
	}

	query := `
		UPDATE feedback_submissions
		SET status = $2, is_approved = $3, approved_by_user_id = $4, approved_at = $5, updated_at = $5
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, id, string(status), approved, moderatorID, time.Now())
	if err != nil {
		return err
	}

	return requireAffected(result, repository.ErrFeedbackNotFound)
}

func (r *feedbackRepository) SetStatus(ctx context.Context, id int64, status domain.FeedbackStatus) error {
	result, err := r.executor.ExecContext(
		ctx,
		"UPDATE feedback_submissions SET status = $2, updated_at = $3 WHERE id = $1",
		id,
		string(status),
		time.Now(),
	)
	if err != nil {
		return err
	}

	return requireAffected(result, repository.ErrFeedbackNotFound)
}

func (r *feedbackRepository) UpsertVote(ctx context.Context, feedbackID int64, userID int64, vote domain.VoteType) error {
	query := `
		INSERT INTO feedback_votes (feedback_id, user_id, vote_type, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (feedback_id, user_id)
		DO UPDATE SET vote_type = EXCLUDED.vote_type, created_at = EXCLUDED.created_at
	`

	_, err := r.executor.ExecContext(ctx, query, feedbackID, userID, string(vote), time.Now())
	return err
}

func (r *feedbackRepository) DeleteVote(ctx context.Context, feedbackID int64, userID int64) error {
	_, err := r.executor.ExecContext(
		ctx,
		"DELETE FROM feedback_votes WHERE feedback_id = $1 AND user_id = $2",
		feedbackID,
		userID,
	)
	return err
}

func (r *feedbackRepository) VotesByUser(ctx context.Context, userID int64) (map[int64]domain.VoteType, error) {
	rows, err := r.executor.QueryContext(
		ctx,
		"SELECT feedback_id, vote_type FROM feedback_votes WHERE user_id = $1",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := make(map[int64]domain.VoteType)
	for rows.Next() {
		var feedbackID int64
		var vote string
		if err := rows.Scan(&feedbackID, &vote); err != nil {
			return nil, err
		}
		votes[feedbackID] = domain.VoteType(vote)
	}

	return votes, rows.Err()
}

func scanFeedback(row rowScanner) (*domain.Feedback, error) {
	feedback := &domain.Feedback{}
	var feedbackType, status string
	var updatedAt sql.NullTime
	err := row.Scan(
		&feedback.ID,
		&feedback.AuthorID,
		&feedbackType,
		&feedback.Title,
		&feedback.Description,
		&status,
		&feedback.IsApproved,
		&feedback.Upvotes,
		&feedback.Downvotes,
		&feedback.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	feedback.Type = domain.FeedbackType(feedbackType)
	feedback.Status = domain.FeedbackStatus(status)
	if updatedAt.Valid {
		feedback.UpdatedAt = &updatedAt.Time
	}

	return feedback, nil
}

func scanFeedbackRows(rows *sql.Rows) ([]*domain.Feedback, error) {
	items := make([]*domain.Feedback, 0)
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, feedback)
	}
	return items, rows.Err()
}
