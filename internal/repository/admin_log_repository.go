package repository

import (
	"context"

	"github.com/bagdasarian/football-registration/internal/domain"
)

type AdminLogRepository interface {
	Create(ctx context.Context, entry *domain.AdminLog) error
	List(ctx context.Context, limit int) ([]*domain.AdminLog, error)
}
