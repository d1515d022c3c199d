package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

type rosterService struct {
	registrantRepo repository.RegistrantRepository
	sessionRepo    repository.TeamSessionRepository
	clock          clockwork.Clock
	firstPick      func(mode domain.TeamMode) int
}

// NewRosterService создает новый экземпляр RosterService
func NewRosterService(
	registrantRepo repository.RegistrantRepository,
	sessionRepo repository.TeamSessionRepository,
	clock clockwork.Clock,
) RosterService {
	return &rosterService{
		registrantRepo: registrantRepo,
		sessionRepo:    sessionRepo,
		clock:          clock,
		firstPick:      RandomFirstPick,
	}
}

// GetSession возвращает сохраненную сессию или пустую на две команды
func (s *rosterService) GetSession(ctx context.Context, actor domain.Identity) (*domain.TeamBuildSession, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.loadOrNew(ctx, actor.UserID)
}

// SetRatings обновляет рейтинги игроков; значения вне [1,5] приводятся к границам
func (s *rosterService) SetRatings(ctx context.Context, actor domain.Identity, ratings map[string]int) (*domain.TeamBuildSession, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	session, err := s.loadOrNew(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	for rawHandle, rating := range ratings {
		handle := strings.ToLower(strings.TrimSpace(rawHandle))
		if handle == "" {
			continue
		}
		session.Ratings[handle] = NormalizeRating(rating)
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Balance раскладывает текущих зарегистрированных по командам змейкой
func (s *rosterService) Balance(ctx context.Context, actor domain.Identity, mode domain.TeamMode) (*domain.TeamBuildSession, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !mode.Valid() {
		return nil, ErrInvalidTeamMode
	}

	session, err := s.loadOrNew(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	registrants, err := s.registrantRepo.List(ctx)
	if err != nil {
		return nil, domain.NewStoreError(err)
	}

	pool := make([]domain.RatedPlayer, 0, len(registrants))
	for _, r := range registrants {
		pool = append(pool, domain.RatedPlayer{
			Handle:      r.Handle,
			DisplayName: r.DisplayName,
			Verified:    r.Verified,
			Rating:      NormalizeRating(session.Ratings[r.Handle]),
		})
	}

	firstPick := s.firstPick(mode)
	result, err := AutoBalance(pool, mode, firstPick)
	if err != nil {
		return nil, err
	}

	session.Mode = mode
	session.Teams = result.Teams
	session.Remaining = result.Remaining

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	log.Info().
		Int64("admin_id", actor.UserID).
		Int("mode", int(mode)).
		Int("first_pick", firstPick).
		Int("pool", len(pool)).
		Int("remaining", len(result.Remaining)).
		Msg("teams balanced")

	return session, nil
}

func (s *rosterService) ClearSession(ctx context.Context, actor domain.Identity) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.sessionRepo.Clear(ctx, actor.UserID); err != nil {
		return domain.NewStoreError(err)
	}
	return nil
}

func (s *rosterService) loadOrNew(ctx context.Context, ownerID int64) (*domain.TeamBuildSession, error) {
	session, err := s.sessionRepo.Load(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.NewTeamBuildSession(ownerID, domain.TwoTeams), nil
		}
		return nil, domain.NewStoreError(err)
	}
	if session.Ratings == nil {
		session.Ratings = map[string]int{}
	}
	return session, nil
}

func (s *rosterService) save(ctx context.Context, session *domain.TeamBuildSession) error {
	session.UpdatedAt = s.clock.Now()
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return domain.NewStoreError(err)
	}
	return nil
}
