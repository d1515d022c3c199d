package service

import (
	"context"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/rules"
)

type RemoveRequest struct {
	Handle string
	Actor  domain.Identity
	// Reason - nil, если причина не указана
	Reason *rules.BanReason
}

type RemovalResult struct {
	Handle string
	// Ban - nil, если игрок удален без бана
	Ban *domain.Ban
}

// BanRequest - ручной бан администратором на произвольный срок
type BanRequest struct {
	Handle      string
	DisplayName string
	Reason      string
	Days        float64
}

type RemovalService interface {
	Remove(ctx context.Context, req RemoveRequest) (*RemovalResult, error)
	Ban(ctx context.Context, actor domain.Identity, req BanRequest) (*domain.Ban, error)
	Unban(ctx context.Context, actor domain.Identity, handle string) error
	ListBans(ctx context.Context, activeOnly bool) ([]*domain.Ban, error)
}
