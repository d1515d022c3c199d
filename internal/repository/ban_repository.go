package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/football-registration/internal/domain"
)

var ErrBanNotFound = errors.New("ban not found")

type BanRepository interface {
	Upsert(ctx context.Context, ban *domain.Ban) error
	GetActive(ctx context.Context, handle string, now time.Time) (*domain.Ban, error)
	List(ctx context.Context) ([]*domain.Ban, error)
	ListActive(ctx context.Context, now time.Time) ([]*domain.Ban, error)
	Delete(ctx context.Context, handle string) error
}
