package usecase

import (
	"context"

	"greenscore/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordPurchaseInput identifies the buyer and the product bought.
// IdempotencyKey is optional; when set, retries with the same key replay the first result.
type RecordPurchaseInput struct {
	UserID         uuid.UUID
	ProductID      uuid.UUID
	IdempotencyKey string
}

// ScanPurchaseInput records a purchase from a scanned product code.
type ScanPurchaseInput struct {
	UserID         uuid.UUID
	ScanData       string
	IdempotencyKey string
}

// PurchaseUsecase defines the purchase ledger use cases.
type PurchaseUsecase interface {
	// RecordPurchase appends a purchase and adds the product's sustainability score to the user's green score
	RecordPurchase(ctx context.Context, input *RecordPurchaseInput) (*entity.Purchase, error)

	// RecordScannedPurchase resolves the product from a scan code, then records the purchase
	RecordScannedPurchase(ctx context.Context, input *ScanPurchaseInput) (*entity.Purchase, error)

	// ListUserPurchases returns the user's purchases in recording order
	ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseDetail, error)
}
