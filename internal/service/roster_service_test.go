package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRosterService() (*rosterService, *MockRegistrantRepository, *MockTeamSessionRepository) {
	registrants := new(MockRegistrantRepository)
	sessions := new(MockTeamSessionRepository)
	svc := NewRosterService(registrants, sessions, clockwork.NewFakeClockAt(openTime)).(*rosterService)
	svc.firstPick = func(domain.TeamMode) int { return 0 }
	return svc, registrants, sessions
}

func TestRosterService_Balance(t *testing.T) {
	ctx := context.Background()
	admin := domain.Identity{UserID: 1, IsAdmin: true}

	t.Run("21 игрок на три команды по 7", func(t *testing.T) {
		svc, registrants, sessions := setupRosterService()

		pool := make([]*domain.Registrant, 0, 21)
		for i := 0; i < 21; i++ {
			pool = append(pool, &domain.Registrant{Handle: fmt.Sprintf("p%02d", i)})
		}
		stored := domain.NewTeamBuildSession(1, domain.TwoTeams)
		stored.Ratings["p00"] = 5
		stored.Ratings["p01"] = 4

		sessions.On("Load", ctx, int64(1)).Return(stored, nil).Once()
		registrants.On("List", ctx).Return(pool, nil).Once()
		sessions.On("Save", ctx, mock.AnythingOfType("*domain.TeamBuildSession")).Return(nil).Once()

		session, err := svc.Balance(ctx, admin, domain.ThreeTeams)

		require.NoError(t, err)
		require.Len(t, session.Teams, 3)
		for _, team := range session.Teams {
			assert.Len(t, team.Players, 7)
		}
		assert.Empty(t, session.Remaining)
		assert.Equal(t, domain.ThreeTeams, session.Mode)
		assert.Equal(t, "p00", session.Teams[0].Players[0].Handle)
		assert.Equal(t, "p01", session.Teams[1].Players[0].Handle)
		assert.Equal(t, openTime, session.UpdatedAt)
		sessions.AssertExpectations(t)
	})

	t.Run("без сохраненной сессии все рейтинги равны 1", func(t *testing.T) {
		svc, registrants, sessions := setupRosterService()

		sessions.On("Load", ctx, int64(1)).Return(nil, repository.ErrSessionNotFound).Once()
		registrants.On("List", ctx).Return([]*domain.Registrant{{Handle: "a"}, {Handle: "b"}}, nil).Once()
		sessions.On("Save", ctx, mock.Anything).Return(nil).Once()

		session, err := svc.Balance(ctx, admin, domain.TwoTeams)

		require.NoError(t, err)
		assert.Equal(t, 1, session.Teams[0].Players[0].Rating)
		assert.Equal(t, "a", session.Teams[0].Players[0].Handle)
		assert.Equal(t, "b", session.Teams[1].Players[0].Handle)
	})

	t.Run("неизвестный режим", func(t *testing.T) {
		svc, _, _ := setupRosterService()

		_, err := svc.Balance(ctx, admin, domain.TeamMode(4))

		assert.True(t, errors.Is(err, domain.NewBadRequestError("")))
	})

	t.Run("только для администратора", func(t *testing.T) {
		svc, _, _ := setupRosterService()

		_, err := svc.Balance(ctx, domain.Identity{UserID: 2}, domain.TwoTeams)

		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("хранилище сессий недоступно", func(t *testing.T) {
		svc, _, sessions := setupRosterService()

		sessions.On("Load", ctx, int64(1)).Return(nil, errors.New("redis down")).Once()

		_, err := svc.Balance(ctx, admin, domain.TwoTeams)

		assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
	})
}

func TestRosterService_SetRatings(t *testing.T) {
	ctx := context.Background()
	admin := domain.Identity{UserID: 1, IsAdmin: true}

	svc, _, sessions := setupRosterService()

	sessions.On("Load", ctx, int64(1)).Return(nil, repository.ErrSessionNotFound).Once()
	sessions.On("Save", ctx, mock.Anything).Return(nil).Once()

	session, err := svc.SetRatings(ctx, admin, map[string]int{" JDoe ": 9, "ann": 0, "bob": 3})

	require.NoError(t, err)
	assert.Equal(t, 5, session.Ratings["jdoe"])
	assert.Equal(t, 1, session.Ratings["ann"])
	assert.Equal(t, 3, session.Ratings["bob"])
}

func TestRosterService_ClearSession(t *testing.T) {
	ctx := context.Background()
	admin := domain.Identity{UserID: 1, IsAdmin: true}

	svc, _, sessions := setupRosterService()
	sessions.On("Clear", ctx, int64(1)).Return(nil).Once()

	require.NoError(t, svc.ClearSession(ctx, admin))
	sessions.AssertExpectations(t)
}
