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

// purchaseRepository implements repository.PurchaseRepository using GORM.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create appends a purchase to the ledger and copies the generated ID back onto the entity.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := &model.PurchaseModel{
		UserID:             purchase.UserID,
		ProductID:          purchase.ProductID,
		Timestamp:          purchase.Timestamp,
		ImpactOnGreenScore: purchase.Impact,
	}

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("purchase references an unknown user or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID

	return nil
}

// ListByUser returns the user's purchases with product names, oldest first.
func (repo *purchaseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseDetail, error) {
	var rows []model.PurchaseDetailRow
	err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Select("purchases.id, purchases.product_id, products.name AS product_name, purchases.timestamp, purchases.impact_on_green_score").
		Joins("JOIN products ON products.id = purchases.product_id").
		Where("purchases.user_id = ?", userID).
		Order("purchases.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases by user")
	}

	details := make([]*entity.PurchaseDetail, 0, len(rows))
	for i := range rows {
		details = append(details, &entity.PurchaseDetail{
			ID:          rows[i].ID,
			ProductID:   rows[i].ProductID,
			ProductName: rows[i].ProductName,
			Timestamp:   rows[i].Timestamp.UTC(),
			Impact:      rows[i].ImpactOnGreenScore,
		})
	}

	return details, nil
}

// SumImpactByUser totals the impact column of the user's purchases. A user with no purchases sums to zero.
func (repo *purchaseRepository) SumImpactByUser(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64
	err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Select("COALESCE(SUM(impact_on_green_score), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum purchase impact")
	}

	return total, nil
}
