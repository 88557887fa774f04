package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel mirrors the append-only 'purchases' table. ID is assigned by the database in insertion order.
type PurchaseModel struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID          uuid.UUID `gorm:"type:uuid;not null"`
	Timestamp          time.Time `gorm:"not null"`
	ImpactOnGreenScore float64   `gorm:"type:double precision;not null"`

	User    *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseDetailRow is the projection of a purchase joined with its product's name.
type PurchaseDetailRow struct {
	ID                 int64
	ProductID          uuid.UUID
	ProductName        string
	Timestamp          time.Time
	ImpactOnGreenScore float64
}
