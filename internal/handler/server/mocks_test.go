package server

import (
	"context"
	"errors"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Register(ctx context.Context, req service.RegisterRequest) (*domain.Registrant, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registrant), args.Error(1)
}

func (m *MockRegistrationService) List(ctx context.Context) ([]domain.RosterEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RosterEntry), args.Error(1)
}

func (m *MockRegistrationService) Status(ctx context.Context) (*domain.RegistrationStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationStatus), args.Error(1)
}

func (m *MockRegistrationService) EditName(ctx context.Context, actor domain.Identity, handle, name string) (*domain.Registrant, error) {
	args := m.Called(ctx, actor, handle, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registrant), args.Error(1)
}

func (m *MockRegistrationService) SetVerified(ctx context.Context, actor domain.Identity, handle string, verified bool) error {
	args := m.Called(ctx, actor, handle, verified)
	return args.Error(0)
}

func (m *MockRegistrationService) Reset(ctx context.Context, actor *domain.Identity) (int64, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(int64), args.Error(1)
}

type MockRemovalService struct {
	mock.Mock
}

func (m *MockRemovalService) Remove(ctx context.Context, req service.RemoveRequest) (*service.RemovalResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RemovalResult), args.Error(1)
}

func (m *MockRemovalService) Ban(ctx context.Context, actor domain.Identity, req service.BanRequest) (*domain.Ban, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ban), args.Error(1)
}

func (m *MockRemovalService) Unban(ctx context.Context, actor domain.Identity, handle string) error {
	args := m.Called(ctx, actor, handle)
	return args.Error(0)
}

func (m *MockRemovalService) ListBans(ctx context.Context, activeOnly bool) ([]*domain.Ban, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ban), args.Error(1)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, actor domain.Identity, req service.SubmitFeedbackRequest) (*domain.Feedback, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}

func (m *MockFeedbackService) ListApproved(ctx context.Context, feedbackType *domain.FeedbackType) ([]*domain.Feedback, error) {
	args := m.Called(ctx, feedbackType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Feedback), args.Error(1)
}

func (m *MockFeedbackService) Vote(ctx context.Context, actor domain.Identity, id int64, vote domain.VoteType) error {
	args := m.Called(ctx, actor, id, vote)
	return args.Error(0)
}

func (m *MockFeedbackService) RemoveVote(ctx context.Context, actor domain.Identity, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockFeedbackService) MyVotes(ctx context.Context, actor domain.Identity) (map[int64]domain.VoteType, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.VoteType), args.Error(1)
}

func (m *MockFeedbackService) ListAll(ctx context.Context, actor domain.Identity) ([]*domain.Feedback, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Feedback), args.Error(1)
}

func (m *MockFeedbackService) Moderate(ctx context.Context, actor domain.Identity, id int64, approve bool) error {
	args := m.Called(ctx, actor, id, approve)
	return args.Error(0)
}

func (m *MockFeedbackService) SetStatus(ctx context.Context, actor domain.Identity, id int64, status domain.FeedbackStatus) error {
	args := m.Called(ctx, actor, id, status)
	return args.Error(0)
}

type MockAdminLogService struct {
	mock.Mock
}

func (m *MockAdminLogService) List(ctx context.Context, actor domain.Identity, limit int) ([]*domain.AdminLog, error) {
	args := m.Called(ctx, actor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AdminLog), args.Error(1)
}

type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) GetSession(ctx context.Context, actor domain.Identity) (*domain.TeamBuildSession, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamBuildSession), args.Error(1)
}

func (m *MockRosterService) SetRatings(ctx context.Context, actor domain.Identity, ratings map[string]int) (*domain.TeamBuildSession, error) {
	args := m.Called(ctx, actor, ratings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamBuildSession), args.Error(1)
}

func (m *MockRosterService) Balance(ctx context.Context, actor domain.Identity, mode domain.TeamMode) (*domain.TeamBuildSession, error) {
	args := m.Called(ctx, actor, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamBuildSession), args.Error(1)
}

func (m *MockRosterService) ClearSession(ctx context.Context, actor domain.Identity) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

// staticTokens - токен является ключом словаря
type staticTokens map[string]domain.Identity

func (s staticTokens) Parse(token string) (domain.Identity, error) {
	identity, ok := s[token]
	if !ok {
		return domain.Identity{}, errors.New("invalid token")
	}
	return identity, nil
}
