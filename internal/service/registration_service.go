package service

import (
	"context"

	"github.com/bagdasarian/football-registration/internal/domain"
)

type RegisterRequest struct {
	Handle      string
	DisplayName string
	// Owner - вошедший пользователь; nil для анонимной регистрации
	Owner *domain.Identity
}

type RegistrationService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Registrant, error)
	List(ctx context.Context) ([]domain.RosterEntry, error)
	Status(ctx context.Context) (*domain.RegistrationStatus, error)
	EditName(ctx context.Context, actor domain.Identity, handle, name string) (*domain.Registrant, error)
	SetVerified(ctx context.Context, actor domain.Identity, handle string, verified bool) error
	// Reset удаляет всех зарегистрированных; actor == nil означает системный вызов (планировщик, секрет)
	Reset(ctx context.Context, actor *domain.Identity) (int64, error)
}
