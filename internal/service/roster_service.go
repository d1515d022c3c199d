package service

import (
	"context"

	"github.com/bagdasarian/football-registration/internal/domain"
)

type RosterService interface {
	GetSession(ctx context.Context, actor domain.Identity) (*domain.TeamBuildSession, error)
	SetRatings(ctx context.Context, actor domain.Identity, ratings map[string]int) (*domain.TeamBuildSession, error)
	Balance(ctx context.Context, actor domain.Identity, mode domain.TeamMode) (*domain.TeamBuildSession, error)
	ClearSession(ctx context.Context, actor domain.Identity) error
}
