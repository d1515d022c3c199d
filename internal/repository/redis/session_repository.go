package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
)

const keyPrefix = "football"

func sessionKey(ownerID int64) string {
	return fmt.Sprintf("%s:team_session:%d", keyPrefix, ownerID)
}

type teamSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTeamSessionRepository - сессии живут ttl с момента последнего сохранения
func NewTeamSessionRepository(client *redis.Client, ttl time.Duration) *teamSessionRepository {
	return &teamSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *teamSessionRepository) Load(ctx context.Context, ownerID int64) (*domain.TeamBuildSession, error) {
	data, err := r.client.Get(ctx, sessionKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.TeamBuildSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode team session: %w", err)
	}
	if session.Ratings == nil {
		session.Ratings = map[string]int{}
	}
	return &session, nil
}

func (r *teamSessionRepository) Save(ctx context.Context, session *domain.TeamBuildSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(session.OwnerID), data, r.ttl).Err()
}

func (r *teamSessionRepository) Clear(ctx context.Context, ownerID int64) error {
	return r.client.Del(ctx, sessionKey(ownerID)).Err()
}
