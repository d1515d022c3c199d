package repository

import (
	"context"
	"errors"

	"github.com/bagdasarian/football-registration/internal/domain"
)

var ErrSessionNotFound = errors.New("team session not found")

// TeamSessionRepository - хранилище сессий конструктора команд (load/save/clear)
type TeamSessionRepository interface {
	Load(ctx context.Context, ownerID int64) (*domain.TeamBuildSession, error)
	Save(ctx context.Context, session *domain.TeamBuildSession) error
	Clear(ctx context.Context, ownerID int64) error
}
