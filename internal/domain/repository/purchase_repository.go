package repository

import (
	"context"

	"greenscore/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRepository is the append-only purchase ledger.
type PurchaseRepository interface {
	// Create appends a purchase and fills in the store-assigned ID.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// ListByUser returns the user's purchases joined with product names, in recording order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseDetail, error)

	// SumImpactByUser returns the total impact of every purchase recorded for the user.
	SumImpactByUser(ctx context.Context, userID uuid.UUID) (float64, error)
}
