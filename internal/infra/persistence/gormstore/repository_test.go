package gormstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"greenscore/config"
	"greenscore/internal/domain/constants"
	"greenscore/internal/domain/entity"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/repository"
	"greenscore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.Driver = constants.StoreDriverSQLite
	cfg.Store.SQLite.Path = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(context.Background(), db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, phone string) *entity.User {
	t.Helper()

	user := &entity.User{ID: uuid.New(), PhoneNumber: phone, Name: "Alice"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, score float64) *entity.Product {
	t.Helper()

	product := &entity.Product{ID: uuid.New(), Name: name, Cost: 10, CarbonEmission: 5, SustainabilityScore: score}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db, "0123456789")

	t.Run("find by id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("find by phone number", func(t *testing.T) {
		got, err := repo.FindByPhoneNumber(ctx, "0123456789")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("duplicate phone number", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{ID: uuid.New(), PhoneNumber: "0123456789", Name: "Bob"})
		assert.ErrorIs(t, err, repository.ErrDuplicatePhoneNumber)
	})

	t.Run("add green score", func(t *testing.T) {
		score, err := repo.AddGreenScore(ctx, user.ID, 24)
		require.NoError(t, err)
		assert.InDelta(t, 24.0, score, 1e-9)

		score, err = repo.AddGreenScore(ctx, user.ID, -4.5)
		require.NoError(t, err)
		assert.InDelta(t, 19.5, score, 1e-9)
	})

	t.Run("add green score to unknown user", func(t *testing.T) {
		_, err := repo.AddGreenScore(ctx, uuid.New(), 1)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProductRepository(db)

	product := seedProduct(t, db, "Bamboo toothbrush", 24)

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product, got)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestPurchaseRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPurchaseRepository(db)

	user := seedUser(t, db, "0123456789")
	other := seedUser(t, db, "9876543210")
	toothbrush := seedProduct(t, db, "Bamboo toothbrush", 24)
	bottle := seedProduct(t, db, "Steel bottle", 90)

	t.Run("empty ledger", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, list)

		total, err := repo.SumImpactByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := &entity.Purchase{UserID: user.ID, ProductID: toothbrush.ID, Timestamp: base, Impact: 24}
	second := &entity.Purchase{UserID: user.ID, ProductID: bottle.ID, Timestamp: base.Add(time.Minute), Impact: 90}
	foreign := &entity.Purchase{UserID: other.ID, ProductID: bottle.ID, Timestamp: base, Impact: 90}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, foreign))
	require.NoError(t, repo.Create(ctx, second))

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	t.Run("list in recording order", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)

		assert.Equal(t, first.ID, list[0].ID)
		assert.Equal(t, "Bamboo toothbrush", list[0].ProductName)
		assert.Equal(t, toothbrush.ID, list[0].ProductID)
		assert.True(t, base.Equal(list[0].Timestamp))
		assert.InDelta(t, 24.0, list[0].Impact, 1e-9)

		assert.Equal(t, second.ID, list[1].ID)
		assert.Equal(t, "Steel bottle", list[1].ProductName)
	})

	t.Run("sum impact", func(t *testing.T) {
		total, err := repo.SumImpactByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.InDelta(t, 114.0, total, 1e-9)
	})
	t.Run("unknown user is rejected", func(t *testing.T) {
		orphan := &entity.Purchase{UserID: uuid.New(), ProductID: bottle.ID, Timestamp: base, Impact: 90}

		err := repo.Create(ctx, orphan)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Zero(t, orphan.ID)

		var count int64
		require.NoError(t, db.Model(&model.PurchaseModel{}).Count(&count).Error)
		assert.Equal(t, int64(3), count)
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Purchase{UserID: user.ID, ProductID: uuid.New(), Timestamp: base, Impact: 1})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestTransactionManager(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	user := seedUser(t, db, "0123456789")
	product := seedProduct(t, db, "Bamboo toothbrush", 24)

	t.Run("rollback discards every write", func(t *testing.T) {
		errBoom := errors.New("boom")

		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if _, err := factory.UserRepo().AddGreenScore(ctx, user.ID, product.SustainabilityScore); err != nil {
				return err
			}
			if err := factory.PurchaseRepo().Create(ctx, &entity.Purchase{
				UserID: user.ID, ProductID: product.ID, Timestamp: time.Now().UTC(), Impact: product.SustainabilityScore,
			}); err != nil {
				return err
			}

			return errBoom
		})
		require.ErrorIs(t, err, errBoom)

		got, err := NewUserRepository(db).FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Zero(t, got.GreenScore)

		list, err := NewPurchaseRepository(db).ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("begin failure is a transaction error", func(t *testing.T) {
		closed := newTestDB(t)
		sqlDB, err := closed.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		called := false
		err = NewTransactionManager(closed).Execute(ctx, func(repository.RepositoryFactory) error {
			called = true

			return nil
		})
		require.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
		assert.False(t, called)
	})

	t.Run("concurrent purchases never lose an increment", func(t *testing.T) {
		const workers = 20

		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
					if _, err := factory.UserRepo().AddGreenScore(ctx, user.ID, product.SustainabilityScore); err != nil {
						return err
					}

					return factory.PurchaseRepo().Create(ctx, &entity.Purchase{
						UserID: user.ID, ProductID: product.ID, Timestamp: time.Now().UTC(), Impact: product.SustainabilityScore,
					})
				})
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		got, err := NewUserRepository(db).FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.InDelta(t, workers*product.SustainabilityScore, got.GreenScore, 1e-9)

		total, err := NewPurchaseRepository(db).SumImpactByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.InDelta(t, got.GreenScore, total, 1e-9)
	})
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	user := seedUser(t, db, "0123456789")

	require.NoError(t, EnsureSchema(ctx, db))

	got, err := NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PhoneNumber, got.PhoneNumber)
}
