package service

import (
	"context"
	"time"

	"github.com/bagdasarian/football-registration/internal/directory"
	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockRegistrantRepository struct {
	mock.Mock
}

func (m *MockRegistrantRepository) Create(ctx context.Context, registrant *domain.Registrant) error {
	args := m.Called(ctx, registrant)
	return args.Error(0)
}

func (m *MockRegistrantRepository) GetByHandle(ctx context.Context, handle string) (*domain.Registrant, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registrant), args.Error(1)
}

func (m *MockRegistrantRepository) List(ctx context.Context) ([]*domain.Registrant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Registrant), args.Error(1)
}

func (m *MockRegistrantRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRegistrantRepository) LockRoster(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrantRepository) UpdateName(ctx context.Context, handle string, name string) error {
	args := m.Called(ctx, handle, name)
	return args.Error(0)
}

func (m *MockRegistrantRepository) SetVerified(ctx context.Context, handle string, verified bool) error {
	args := m.Called(ctx, handle, verified)
	return args.Error(0)
}

func (m *MockRegistrantRepository) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

func (m *MockRegistrantRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBanRepository struct {
	mock.Mock
}

func (m *MockBanRepository) Upsert(ctx context.Context, ban *domain.Ban) error {
	args := m.Called(ctx, ban)
	return args.Error(0)
}

func (m *MockBanRepository) GetActive(ctx context.Context, handle string, now time.Time) (*domain.Ban, error) {
	args := m.Called(ctx, handle, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ban), args.Error(1)
}

func (m *MockBanRepository) List(ctx context.Context) ([]*domain.Ban, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ban), args.Error(1)
}

func (m *MockBanRepository) ListActive(ctx context.Context, now time.Time) ([]*domain.Ban, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ban), args.Error(1)
}

func (m *MockBanRepository) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

type MockAdminLogRepository struct {
	mock.Mock
}

func (m *MockAdminLogRepository) Create(ctx context.Context, entry *domain.AdminLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAdminLogRepository) List(ctx context.Context, limit int) ([]*domain.AdminLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AdminLog), args.Error(1)
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ListApproved(ctx context.Context, feedbackType *domain.FeedbackType) ([]*domain.Feedback, error) {
	args := m.Called(ctx, feedbackType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ListAll(ctx context.Context) ([]*domain.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) Moderate(ctx context.Context, id int64, approved bool, moderatorID int64) error {
	args := m.Called(ctx, id, approved, moderatorID)
	return args.Error(0)
}

func (m *MockFeedbackRepository) SetStatus(ctx context.Context, id int64, status domain.FeedbackStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFeedbackRepository) UpsertVote(ctx context.Context, feedbackID int64, userID int64, vote domain.VoteType) error {
	args := m.Called(ctx, feedbackID, userID, vote)
	return args.Error(0)
}

func (m *MockFeedbackRepository) DeleteVote(ctx context.Context, feedbackID int64, userID int64) error {
	args := m.Called(ctx, feedbackID, userID)
	return args.Error(0)
}

func (m *MockFeedbackRepository) VotesByUser(ctx context.Context, userID int64) (map[int64]domain.VoteType, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.VoteType), args.Error(1)
}

type MockTeamSessionRepository struct {
	mock.Mock
}

func (m *MockTeamSessionRepository) Load(ctx context.Context, ownerID int64) (*domain.TeamBuildSession, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamBuildSession), args.Error(1)
}

func (m *MockTeamSessionRepository) Save(ctx context.Context, session *domain.TeamBuildSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockTeamSessionRepository) Clear(ctx context.Context, ownerID int64) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Lookup(ctx context.Context, handle string) (directory.Entry, bool) {
	args := m.Called(ctx, handle)
	return args.Get(0).(directory.Entry), args.Bool(1)
}

// MockTransactor выполняет fn сразу, передавая моки репозиториев вместо транзакции
type MockTransactor struct {
	Repos repository.TxRepositories
}

func (m *MockTransactor) RunInTx(ctx context.Context, fn func(tx repository.TxRepositories) error) error {
	return fn(m.Repos)
}
