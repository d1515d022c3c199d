package service

import (
	"context"

	"github.com/bagdasarian/football-registration/internal/domain"
)

type AdminLogService interface {
	List(ctx context.Context, actor domain.Identity, limit int) ([]*domain.AdminLog, error)
}
