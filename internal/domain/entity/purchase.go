package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is an immutable ledger entry. IDs are assigned by the store in recording order.
type Purchase struct {
	ID        int64
	UserID    uuid.UUID
	ProductID uuid.UUID
	Timestamp time.Time // UTC
	Impact    float64   // Copy of the product's sustainability score when the purchase was recorded.
}

// PurchaseDetail is a purchase joined with the name of the product bought.
type PurchaseDetail struct {
	ID          int64
	ProductID   uuid.UUID
	ProductName string
	Timestamp   time.Time
	Impact      float64
}
