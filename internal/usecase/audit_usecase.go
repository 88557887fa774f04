package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ReconcileOutput compares a user's stored green score with the total of the purchase ledger.
type ReconcileOutput struct {
	UserID      uuid.UUID
	GreenScore  float64
	LedgerTotal float64
	Drift       float64 // GreenScore - LedgerTotal
	Consistent  bool
}

// AuditUsecase checks the green score invariant for individual users.
type AuditUsecase interface {
	// ReconcileUser reports whether the user's green score equals the sum of their purchase impacts.
	// It never modifies stored data.
	ReconcileUser(ctx context.Context, userID uuid.UUID) (*ReconcileOutput, error)
}
