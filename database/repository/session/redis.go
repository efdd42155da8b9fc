package sessionRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"barberia/models"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "wizard:session:"

type redisSessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepo stores sessions as JSON blobs in Redis.
func NewRedisSessionRepo(client *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSessionRepo{client: client, ttl: ttl}
}

func (r *redisSessionRepo) Create(ctx context.Context, s *models.WizardSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ok, err := r.client.SetNX(ctx, keyPrefix+s.ID, data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	if !ok {
		return ErrSessionExists
	}
	return nil
}

func (r *redisSessionRepo) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	data, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read booking session: %w", err)
	}

	var s models.WizardSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &s, nil
}

func (r *redisSessionRepo) Update(ctx context.Context, s *models.WizardSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ok, err := r.client.SetXX(ctx, keyPrefix+s.ID, data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to update booking session: %w", err)
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

func (r *redisSessionRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
