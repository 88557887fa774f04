package gormstore

import (
	"context"

	"greenscore/internal/errors"
	"greenscore/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// EnsureSchema creates the users, products and purchases tables if they are missing.
// It is safe to call on every start and never drops or rewrites existing rows.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.PurchaseModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
