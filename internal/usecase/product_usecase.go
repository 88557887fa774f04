package usecase

import (
	"context"

	"greenscore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput carries the catalog attributes the sustainability score is derived from.
type CreateProductInput struct {
	Name           string
	Cost           float64
	CarbonEmission float64
}

// ProductUsecase defines the catalog management use cases.
type ProductUsecase interface {
	// CreateProduct scores and stores a new catalog product
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetProduct returns a product by ID
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// GenerateProductQR renders the PNG scan code for a product
	GenerateProductQR(ctx context.Context, productID uuid.UUID) ([]byte, error)
}
