package model

import (
	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Cost                float64   `gorm:"type:double precision;not null"`
	CarbonEmission      float64   `gorm:"type:double precision;not null"`
	SustainabilityScore float64   `gorm:"type:double precision;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
