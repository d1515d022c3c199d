package repository

import (
	"context"
	"errors"

	"github.com/bagdasarian/football-registration/internal/domain"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	GetByID(ctx context.Context, id int64) (*domain.Feedback, error)
	ListApproved(ctx context.Context, feedbackType *domain.FeedbackType) ([]*domain.Feedback, error)
	ListAll(ctx context.Context) ([]*domain.Feedback, error)
	Moderate(ctx context.Context, id int64, approved bool, moderatorID int64) error
	SetStatus(ctx context.Context, id int64, status domain.FeedbackStatus) error
	UpsertVote(ctx context.Context, feedbackID int64, userID int64, vote domain.VoteType) error
	DeleteVote(ctx context.Context, feedbackID int64, userID int64) error
	VotesByUser(ctx context.Context, userID int64) (map[int64]domain.VoteType, error)
}
