// Package idempotency makes purchase recording safe to retry by remembering outcomes per client key.
package idempotency

import (
	"context"
	"encoding/json"
	"time"

	"greenscore/internal/domain/entity"
	"greenscore/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "greenscore:idempotency:purchase:"

	// pendingMarker is stored while the owning request is still recording.
	pendingMarker = "pending"

	// pendingTTL bounds how long a crashed owner can block its key.
	pendingTTL = time.Minute
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates an IdempotencyStore whose entries expire after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration) service.IdempotencyStore {
	return &redisStore{client: client, ttl: ttl}
}

// storedPurchase is the JSON form kept in Redis for replay.
type storedPurchase struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
	Impact    float64   `json:"impact"`
}

// Begin claims the key with SET NX. A lost race reads back whatever the owner stored.
func (s *redisStore) Begin(ctx context.Context, key string) (*entity.Purchase, error) {
	redisKey := keyPrefix + key

	claimed, err := s.client.SetNX(ctx, redisKey, pendingMarker, min(pendingTTL, s.ttl)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim idempotency key")
	}
	if claimed {
		return nil, nil
	}

	value, err := s.client.Get(ctx, redisKey).Result()
	if errors.Is(err, redis.Nil) {
		// The key expired or was released between SETNX and GET; let the caller retry.
		return nil, service.ErrIdempotencyKeyInUse
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read idempotency key")
	}
	if value == pendingMarker {
		return nil, service.ErrIdempotencyKeyInUse
	}

	return decodePurchase(value)
}

// Complete replaces the pending marker with the recorded purchase.
func (s *redisStore) Complete(ctx context.Context, key string, purchase *entity.Purchase) error {
	data, err := json.Marshal(storedPurchase{
		ID:        purchase.ID,
		UserID:    purchase.UserID.String(),
		ProductID: purchase.ProductID.String(),
		Timestamp: purchase.Timestamp,
		Impact:    purchase.Impact,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store idempotency result")
	}

	return nil
}

// Release deletes the key so a failed recording can be retried.
func (s *redisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to release idempotency key")
	}

	return nil
}

func decodePurchase(value string) (*entity.Purchase, error) {
	var stored storedPurchase
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		return nil, errors.Wrap(err, "failed to decode idempotency result")
	}

	purchase := &entity.Purchase{
		ID:        stored.ID,
		Timestamp: stored.Timestamp.UTC(),
		Impact:    stored.Impact,
	}

	var err error
	if purchase.UserID, err = parseUUID(stored.UserID); err != nil {
		return nil, err
	}
	if purchase.ProductID, err = parseUUID(stored.ProductID); err != nil {
		return nil, err
	}

	return purchase, nil
}
