package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const maxFeedbackTitleLength = 200

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	adminLogRepo repository.AdminLogRepository
	clock        clockwork.Clock
}

// NewFeedbackService создает новый экземпляр FeedbackService
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	adminLogRepo repository.AdminLogRepository,
	clock clockwork.Clock,
) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		adminLogRepo: adminLogRepo,
		clock:        clock,
	}
}

// Submit сохраняет предложение; до одобрения модератором оно не видно остальным
func (s *feedbackService) Submit(ctx context.Context, actor domain.Identity, req SubmitFeedbackRequest) (*domain.Feedback, error) {
	if !req.Type.Valid() {
		return nil, domain.NewBadRequestError("feedback type must be one of feature, bug, feedback")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" || len([]rune(title)) > maxFeedbackTitleLength {
		return nil, domain.NewBadRequestError(fmt.Sprintf("title must be 1 to %d characters", maxFeedbackTitleLength))
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, domain.NewBadRequestError("description is required")
	}

	feedback := &domain.Feedback{
		AuthorID:    actor.UserID,
		Type:        req.Type,
		Title:       title,
		Description: description,
		Status:      domain.FeedbackPending,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, domain.NewStoreError(err)
	}

	return feedback, nil
}

func (s *feedbackService) ListApproved(ctx context.Context, feedbackType *domain.FeedbackType) ([]*domain.Feedback, error) {
	if feedbackType != nil && !feedbackType.Valid() {
		return nil, domain.NewBadRequestError("unknown feedback type")
	}

	items, err := s.feedbackRepo.ListApproved(ctx, feedbackType)
	if err != nil {
		return nil, domain.NewStoreError(err)
	}
	return items, nil
}

// Vote - один голос на пользователя, повторный голос заменяет предыдущий
func (s *feedbackService) Vote(ctx context.Context, actor domain.Identity, id int64, vote domain.VoteType) error {
	if !vote.Valid() {
		return domain.NewBadRequestError("vote must be upvote or downvote")
	}

	feedback, err := s.getFeedback(ctx, id)
	if err != nil {
		return err
	}
	if !feedback.IsApproved {
		return domain.ErrFeedbackNotApproved
	}

	if err := s.feedbackRepo.UpsertVote(ctx, id, actor.UserID, vote); err != nil {
		return domain.NewStoreError(err)
	}
	return nil
}

func (s *feedbackService) RemoveVote(ctx context.Context, actor domain.Identity, id int64) error {
	if err := s.feedbackRepo.DeleteVote(ctx, id, actor.UserID); err != nil {
		return domain.NewStoreError(err)
	}
	return nil
}

func (s *feedbackService) MyVotes(ctx context.Context, actor domain.Identity) (map[int64]domain.VoteType, error) {
	votes, err := s.feedbackRepo.VotesByUser(ctx, actor.UserID)
	if err != nil {
		return nil, domain.NewStoreError(err)
	}
	return votes, nil
}

func (s *feedbackService) ListAll(ctx context.Context, actor domain.Identity) ([]*domain.Feedback, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	items, err := s.feedbackRepo.ListAll(ctx)
	if err != nil {
		return nil, domain.NewStoreError(err)
	}
	return items, nil
}

func (s *feedbackService) Moderate(ctx context.Context, actor domain.Identity, id int64, approve bool) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	feedback, err := s.getFeedback(ctx, id)
	if err != nil {
		return err
	}

	if err := s.feedbackRepo.Moderate(ctx, id, approve, actor.UserID); err != nil {
		return translateFeedbackErr(err, id)
	}

	action := domain.ActionFeedbackReject
	if approve {
		action = domain.ActionFeedbackApprove
	}
	s.writeLog(ctx, actor, action, feedback, "")
	return nil
}

func (s *feedbackService) SetStatus(ctx context.Context, actor domain.Identity, id int64, status domain.FeedbackStatus) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if !status.Valid() {
		return domain.NewBadRequestError("unknown feedback status")
	}

	feedback, err := s.getFeedback(ctx, id)
	if err != nil {
		return err
	}

	if err := s.feedbackRepo.SetStatus(ctx, id, status); err != nil {
		return translateFeedbackErr(err, id)
	}

	s.writeLog(ctx, actor, domain.ActionFeedbackStatus, feedback, fmt.Sprintf("%s -> %s", feedback.Status, status))
	return nil
}

func (s *feedbackService) getFeedback(ctx context.Context, id int64) (*domain.Feedback, error) {
	feedback, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateFeedbackErr(err, id)
	}
	return feedback, nil
}

// writeLog - запись в журнал не должна отменять уже выполненную модерацию
func (s *feedbackService) writeLog(ctx context.Context, actor domain.Identity, action string, feedback *domain.Feedback, details string) {
	entry := &domain.AdminLog{
		ActorUserID: actorID(actor),
		Action:      action,
		TargetUser:  fmt.Sprintf("feedback:%d", feedback.ID),
		TargetName:  feedback.Title,
		Details:     details,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.adminLogRepo.Create(ctx, entry); err != nil {
		log.Error().Err(err).Str("action", action).Int64("feedback_id", feedback.ID).Msg("failed to write admin log")
	}
}

func translateFeedbackErr(err error, id int64) error {
	if errors.Is(err, repository.ErrFeedbackNotFound) {
		return domain.NewNotFoundError(fmt.Sprintf("feedback with id %d", id))
	}
	return domain.NewStoreError(err)
}
