package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "greenscore/internal/delivery/context"
	"greenscore/internal/domain/entity"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/repository"
	"greenscore/internal/domain/service"
	mockRepo "greenscore/internal/mocks/repository"
	mockSvc "greenscore/internal/mocks/service"
	"greenscore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseServiceFixtures struct {
	service          usecase.PurchaseUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	purchaseRepo     *mockRepo.MockPurchaseRepository
	qrcodeService    *mockSvc.MockQRCodeService
	idempotencyStore *mockSvc.MockIdempotencyStore
	publisher        *mockSvc.MockEventPublisher
	metrics          *mockSvc.MockLedgerMetrics
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	fx := purchaseServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		purchaseRepo:     mockRepo.NewMockPurchaseRepository(t),
		qrcodeService:    mockSvc.NewMockQRCodeService(t),
		idempotencyStore: mockSvc.NewMockIdempotencyStore(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		metrics:          mockSvc.NewMockLedgerMetrics(t),
	}

	fx.service = NewPurchaseService(PurchaseServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		PurchaseRepo:     fx.purchaseRepo,
		QRCodeService:    fx.qrcodeService,
		IdempotencyStore: fx.idempotencyStore,
		Publisher:        fx.publisher,
		Metrics:          fx.metrics,
		Logger:           newDiscardLogger(),
	})

	return fx
}

// expectCommittedPurchase wires a transaction in which user and product exist and every write succeeds.
func expectCommittedPurchase(t *testing.T, fx purchaseServiceFixtures, userID uuid.UUID, product *entity.Product, purchaseID int64) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			factory.EXPECT().UserRepo().Return(txUserRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().PurchaseRepo().Return(txPurchaseRepo)

			txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txUserRepo.EXPECT().
				AddGreenScore(ctx, userID, product.SustainabilityScore).
				Return(product.SustainabilityScore, nil)
			txPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Run(func(_ context.Context, purchase *entity.Purchase) {
					purchase.ID = purchaseID
				}).
				Return(nil)

			return fn(factory)
		})
}

func TestPurchaseService_RecordPurchase_Success(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Tote Bag", SustainabilityScore: 24}

	expectCommittedPurchase(t, fx, userID, product, 7)
	fx.metrics.EXPECT().ObservePurchase(24.0).Return()
	fx.publisher.EXPECT().
		PublishPurchaseRecorded(mock.Anything, mock.AnythingOfType("*service.PurchaseRecordedEvent")).
		Run(func(_ context.Context, event *service.PurchaseRecordedEvent) {
			assert.Equal(t, "req-1", event.RequestID)
			assert.Equal(t, int64(7), event.PurchaseID)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, product.ID.String(), event.ProductID)
			assert.InDelta(t, 24.0, event.Impact, 1e-9)
		}).
		Return(nil)

	before := time.Now().UTC().Add(-time.Second)
	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{UserID: userID, ProductID: product.ID})

	require.NoError(t, err)
	assert.Equal(t, int64(7), purchase.ID)
	assert.Equal(t, userID, purchase.UserID)
	assert.Equal(t, product.ID, purchase.ProductID)
	assert.InDelta(t, 24.0, purchase.Impact, 1e-9)
	assert.Equal(t, time.UTC, purchase.Timestamp.Location())
	assert.True(t, purchase.Timestamp.After(before))
	assert.Zero(t, purchase.Timestamp.Nanosecond()%int(time.Microsecond))
}

func TestPurchaseService_RecordPurchase_PublishFailureStillSucceeds(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), SustainabilityScore: -4}

	expectCommittedPurchase(t, fx, userID, product, 1)
	fx.metrics.EXPECT().ObservePurchase(-4.0).Return()
	fx.publisher.EXPECT().
		PublishPurchaseRecorded(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{UserID: userID, ProductID: product.ID})

	require.NoError(t, err)
	assert.Equal(t, int64(1), purchase.ID)
}

func TestPurchaseService_RecordPurchase_UnknownUser(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(txUserRepo)
			txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(factory)
		})

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{UserID: userID, ProductID: uuid.New()})

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPurchaseService_RecordPurchase_UnknownProduct(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().UserRepo().Return(txUserRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			txProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

			return fn(factory)
		})

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{UserID: userID, ProductID: productID})

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestPurchaseService_RecordPurchase_LedgerWriteFailure(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), SustainabilityScore: 50}
	dbErr := errors.New("insert failed")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			factory.EXPECT().UserRepo().Return(txUserRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().PurchaseRepo().Return(txPurchaseRepo)
			txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txUserRepo.EXPECT().AddGreenScore(ctx, userID, 50.0).Return(50.0, nil)
			txPurchaseRepo.EXPECT().Create(ctx, mock.Anything).Return(dbErr)

			// The real manager rolls back here, undoing the score update.
			return fn(factory)
		})

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{UserID: userID, ProductID: product.ID})

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, dbErr)
}

func TestPurchaseService_RecordPurchase_IdempotentFirstRequest(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), SustainabilityScore: 10}
	key := "client-key-1"

	fx.idempotencyStore.EXPECT().Begin(ctx, key).Return(nil, nil)
	expectCommittedPurchase(t, fx, userID, product, 3)
	fx.metrics.EXPECT().ObservePurchase(10.0).Return()
	fx.publisher.EXPECT().PublishPurchaseRecorded(mock.Anything, mock.Anything).Return(nil)
	fx.idempotencyStore.EXPECT().
		Complete(mock.Anything, key, mock.MatchedBy(func(p *entity.Purchase) bool { return p.ID == 3 })).
		Return(nil)

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		UserID:         userID,
		ProductID:      product.ID,
		IdempotencyKey: key,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), purchase.ID)
}

func TestPurchaseService_RecordPurchase_IdempotentReplay(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	stored := &entity.Purchase{ID: 3, UserID: uuid.New(), ProductID: uuid.New(), Impact: 10}

	fx.idempotencyStore.EXPECT().Begin(ctx, "client-key-1").Return(stored, nil)
	fx.metrics.EXPECT().IncIdempotentReplay().Return()

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		UserID:         stored.UserID,
		ProductID:      stored.ProductID,
		IdempotencyKey: "client-key-1",
	})

	require.NoError(t, err)
	assert.Equal(t, stored, purchase)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPurchaseService_RecordPurchase_IdempotencyKeyReusedForOtherPurchase(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	stored := &entity.Purchase{ID: 3, UserID: uuid.New(), ProductID: uuid.New()}

	fx.idempotencyStore.EXPECT().Begin(ctx, "client-key-1").Return(stored, nil)

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		UserID:         stored.UserID,
		ProductID:      uuid.New(),
		IdempotencyKey: "client-key-1",
	})

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPurchaseService_RecordPurchase_IdempotencyKeyInUse(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.idempotencyStore.EXPECT().Begin(ctx, "client-key-1").Return(nil, service.ErrIdempotencyKeyInUse)

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		UserID:         uuid.New(),
		ProductID:      uuid.New(),
		IdempotencyKey: "client-key-1",
	})

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrIdempotencyKeyInUse)
}

func TestPurchaseService_RecordPurchase_FailureReleasesIdempotencyKey(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.idempotencyStore.EXPECT().Begin(ctx, "client-key-1").Return(nil, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(domainerrors.ErrUserNotFound)
	fx.idempotencyStore.EXPECT().Release(mock.Anything, "client-key-1").Return(nil)

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		UserID:         userID,
		ProductID:      uuid.New(),
		IdempotencyKey: "client-key-1",
	})

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPurchaseService_RecordScannedPurchase(t *testing.T) {
	t.Run("valid scan code records the product", func(t *testing.T) {
		fx := createTestPurchaseService(t)
		ctx := context.Background()
		userID := uuid.New()
		product := &entity.Product{ID: uuid.New(), SustainabilityScore: 60}

		fx.qrcodeService.EXPECT().ParseProductQR("scan-data").Return(product.ID, nil)
		expectCommittedPurchase(t, fx, userID, product, 11)
		fx.metrics.EXPECT().ObservePurchase(60.0).Return()
		fx.publisher.EXPECT().PublishPurchaseRecorded(mock.Anything, mock.Anything).Return(nil)

		purchase, err := fx.service.RecordScannedPurchase(ctx, &usecase.ScanPurchaseInput{UserID: userID, ScanData: "scan-data"})

		require.NoError(t, err)
		assert.Equal(t, product.ID, purchase.ProductID)
	})

	t.Run("unreadable scan code", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		fx.qrcodeService.EXPECT().ParseProductQR("garbage").Return(uuid.Nil, errors.New("bad payload"))

		purchase, err := fx.service.RecordScannedPurchase(context.Background(), &usecase.ScanPurchaseInput{
			UserID:   uuid.New(),
			ScanData: "garbage",
		})

		require.Error(t, err)
		assert.Nil(t, purchase)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidScanCode)
	})
}

func TestPurchaseService_ListUserPurchases(t *testing.T) {
	t.Run("returns ledger entries", func(t *testing.T) {
		fx := createTestPurchaseService(t)
		ctx := context.Background()
		userID := uuid.New()
		details := []*entity.PurchaseDetail{
			{ID: 1, ProductName: "Tote Bag", Impact: 24},
			{ID: 2, ProductName: "Soap", Impact: -4},
		}

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		fx.purchaseRepo.EXPECT().ListByUser(ctx, userID).Return(details, nil)

		got, err := fx.service.ListUserPurchases(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, details, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestPurchaseService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		got, err := fx.service.ListUserPurchases(ctx, userID)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestPurchaseService_RecordPurchase_CompletesKeyAfterClientDisconnect(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), SustainabilityScore: 10}
	key := "client-key-1"

	fx.idempotencyStore.EXPECT().Begin(ctx, key).Return(nil, nil)
	expectCommittedPurchase(t, fx, userID, product, 5)
	fx.metrics.EXPECT().ObservePurchase(10.0).Return()
	// The client goes away once the purchase is committed.
	fx.publisher.EXPECT().
		PublishPurchaseRecorded(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.PurchaseRecordedEvent) { cancel() }).
		Return(nil)
	fx.idempotencyStore.EXPECT().
		Complete(mock.Anything, key, mock.MatchedBy(func(p *entity.Purchase) bool { return p.ID == 5 })).
		Run(func(completeCtx context.Context, _ string, _ *entity.Purchase) {
			assert.NoError(t, completeCtx.Err())
		}).
		Return(nil)

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		UserID:         userID,
		ProductID:      product.ID,
		IdempotencyKey: key,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), purchase.ID)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestPurchaseService_RecordPurchase_ReleasesKeyOnCancelledRequest(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx, cancel := context.WithCancel(context.Background())
	key := "client-key-1"

	fx.idempotencyStore.EXPECT().Begin(ctx, key).Return(nil, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(context.Context, func(repository.RepositoryFactory) error) error {
			cancel()

			return context.Canceled
		})
	fx.idempotencyStore.EXPECT().
		Release(mock.Anything, key).
		Run(func(releaseCtx context.Context, _ string) {
			assert.NoError(t, releaseCtx.Err())
		}).
		Return(nil)

	purchase, err := fx.service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		UserID:         uuid.New(),
		ProductID:      uuid.New(),
		IdempotencyKey: key,
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, purchase)
}
