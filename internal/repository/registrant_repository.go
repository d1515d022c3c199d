package repository

import (
	"context"
	"errors"

	"github.com/bagdasarian/football-registration/internal/domain"
)

var (
	ErrRegistrantNotFound = errors.New("registrant not found")
	// ErrHandleTaken - нарушение уникальности логина при вставке
	ErrHandleTaken = errors.New("handle already registered")
)

type RegistrantRepository interface {
	Create(ctx context.Context, registrant *domain.Registrant) error
	GetByHandle(ctx context.Context, handle string) (*domain.Registrant, error)
	List(ctx context.Context) ([]*domain.Registrant, error)
	Count(ctx context.Context) (int, error)
	// LockRoster берет транзакционную блокировку состава; вне транзакции бесполезна
	LockRoster(ctx context.Context) error
	UpdateName(ctx context.Context, handle string, name string) error
	SetVerified(ctx context.Context, handle string, verified bool) error
	Delete(ctx context.Context, handle string) error
	DeleteAll(ctx context.Context) (int64, error)
}
