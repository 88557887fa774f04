package service

import (
	"context"
	"errors"

	"greenscore/internal/domain/entity"
)

// ErrIdempotencyKeyInUse is returned by Begin while another request holds the key.
var ErrIdempotencyKeyInUse = errors.New("idempotency key in use")

// IdempotencyStore remembers the outcome of purchase recordings keyed by a client token.
type IdempotencyStore interface {
	// Begin claims key. It returns the stored purchase when the key already completed,
	// nil when the caller now owns the key, or ErrIdempotencyKeyInUse.
	Begin(ctx context.Context, key string) (*entity.Purchase, error)

	// Complete stores the purchase produced under key.
	Complete(ctx context.Context, key string, purchase *entity.Purchase) error

	// Release frees a key whose recording failed so the client can retry.
	Release(ctx context.Context, key string) error
}
