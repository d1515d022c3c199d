package service

import (
	"context"

	"github.com/bagdasarian/football-registration/internal/domain"
)

type SubmitFeedbackRequest struct {
	Type        domain.FeedbackType
	Title       string
	Description string
}

type FeedbackService interface {
	Submit(ctx context.Context, actor domain.Identity, req SubmitFeedbackRequest) (*domain.Feedback, error)
	ListApproved(ctx context.Context, feedbackType *domain.FeedbackType) ([]*domain.Feedback, error)
	Vote(ctx context.Context, actor domain.Identity, id int64, vote domain.VoteType) error
	RemoveVote(ctx context.Context, actor domain.Identity, id int64) error
	MyVotes(ctx context.Context, actor domain.Identity) (map[int64]domain.VoteType, error)
	ListAll(ctx context.Context, actor domain.Identity) ([]*domain.Feedback, error)
	Moderate(ctx context.Context, actor domain.Identity, id int64, approve bool) error
	SetStatus(ctx context.Context, actor domain.Identity, id int64, status domain.FeedbackStatus) error
}
