package gormstore

import (
	"context"

	"greenscore/internal/domain/entity"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/repository"
	"greenscore/internal/errors"
	"greenscore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.db.WithContext(ctx).Create(fromProductDomain(product)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:                  productM.ID,
		Name:                productM.Name,
		Cost:                productM.Cost,
		CarbonEmission:      productM.CarbonEmission,
		SustainabilityScore: productM.SustainabilityScore,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                  product.ID,
		Name:                product.Name,
		Cost:                product.Cost,
		CarbonEmission:      product.CarbonEmission,
		SustainabilityScore: product.SustainabilityScore,
	}
}
