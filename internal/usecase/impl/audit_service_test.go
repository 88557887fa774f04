package impl

import (
	"context"
	"testing"

	"greenscore/internal/domain/entity"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/repository"
	mockRepo "greenscore/internal/mocks/repository"
	mockSvc "greenscore/internal/mocks/service"
	"greenscore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auditServiceFixtures struct {
	service      usecase.AuditUsecase
	userRepo     *mockRepo.MockUserRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	metrics      *mockSvc.MockLedgerMetrics
}

func createTestAuditService(t *testing.T) auditServiceFixtures {
	fx := auditServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
		metrics:      mockSvc.NewMockLedgerMetrics(t),
	}

	fx.service = NewAuditService(AuditServiceParams{
		UserRepo:     fx.userRepo,
		PurchaseRepo: fx.purchaseRepo,
		Metrics:      fx.metrics,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAuditService_ReconcileUser_Consistent(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, GreenScore: 0.3}, nil).Once()
	// 0.1 + 0.2 differs from 0.3 only by rounding.
	fx.purchaseRepo.EXPECT().SumImpactByUser(ctx, userID).Return(0.1+0.2, nil).Once()

	output, err := fx.service.ReconcileUser(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.Consistent)
	assert.InDelta(t, 0.3, output.LedgerTotal, 1e-9)
}

func TestAuditService_ReconcileUser_TransientDriftIsRechecked(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	userID := uuid.New()

	// A purchase commits between reading the user and summing the ledger.
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, GreenScore: 24}, nil).Once()
	fx.purchaseRepo.EXPECT().SumImpactByUser(ctx, userID).Return(48, nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, GreenScore: 48}, nil).Once()
	fx.purchaseRepo.EXPECT().SumImpactByUser(ctx, userID).Return(48, nil).Once()

	output, err := fx.service.ReconcileUser(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.Consistent)
	assert.InDelta(t, 48.0, output.GreenScore, 1e-9)
}

func TestAuditService_ReconcileUser_DriftDetected(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, GreenScore: 100}, nil).Times(2)
	fx.purchaseRepo.EXPECT().SumImpactByUser(ctx, userID).Return(76, nil).Times(2)
	fx.metrics.EXPECT().IncDrift().Return().Once()

	output, err := fx.service.ReconcileUser(ctx, userID)

	require.NoError(t, err)
	assert.False(t, output.Consistent)
	assert.InDelta(t, 24.0, output.Drift, 1e-9)
	assert.InDelta(t, 100.0, output.GreenScore, 1e-9)
	assert.InDelta(t, 76.0, output.LedgerTotal, 1e-9)
}

func TestAuditService_ReconcileUser_UnknownUser(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.ReconcileUser(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuditService_ReconcileUser_LedgerReadFailure(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	userID := uuid.New()
	dbErr := errors.New("timeout")

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.purchaseRepo.EXPECT().SumImpactByUser(ctx, userID).Return(0, dbErr)

	output, err := fx.service.ReconcileUser(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, dbErr)
}
