package service

import (
	"context"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
)

const (
	defaultAdminLogLimit = 100
	maxAdminLogLimit     = 500
)

type adminLogService struct {
	adminLogRepo repository.AdminLogRepository
}

// NewAdminLogService создает новый экземпляр AdminLogService
func NewAdminLogService(adminLogRepo repository.AdminLogRepository) AdminLogService {
	return &adminLogService{adminLogRepo: adminLogRepo}
}

// List возвращает последние действия администраторов, новые первыми
func (s *adminLogService) List(ctx context.Context, actor domain.Identity, limit int) ([]*domain.AdminLog, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultAdminLogLimit
	}
	if limit > maxAdminLogLimit {
		limit = maxAdminLogLimit
	}

	logs, err := s.adminLogRepo.List(ctx, limit)
	if err != nil {
		return nil, domain.NewStoreError(err)
	}
	return logs, nil
}
