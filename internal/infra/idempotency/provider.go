package idempotency

import (
	"context"
	"log/slog"

	"greenscore/config"
	"greenscore/internal/domain/entity"
	"greenscore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopStore never remembers anything; every request owns its key.
type noopStore struct{}

func (noopStore) Begin(context.Context, string) (*entity.Purchase, error) { return nil, nil }

func (noopStore) Complete(context.Context, string, *entity.Purchase) error { return nil }

func (noopStore) Release(context.Context, string) error { return nil }

// NewNoopStore returns the store used when Redis is not configured.
func NewNoopStore() service.IdempotencyStore {
	return noopStore{}
}

// StoreParams holds dependencies for the IdempotencyStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewIdempotencyStore builds the Redis-backed store, or a no-op store when Redis is not configured
func NewIdempotencyStore(params StoreParams) (service.IdempotencyStore, error) {
	cfg := params.Config.Redis

	client, err := NewRedisClient(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		params.Logger.Info("Redis not configured, idempotency keys are ignored")

		return NewNoopStore(), nil
	}

	params.Logger.Info("Using Redis idempotency store", slog.Duration("ttl", cfg.IdempotencyTTL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisStore(client, cfg.IdempotencyTTL), nil
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to decode idempotency result")
	}

	return id, nil
}

// Module provides the idempotency FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdempotencyStore),
)
