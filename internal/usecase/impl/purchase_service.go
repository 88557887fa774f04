package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "greenscore/internal/delivery/context"
	"greenscore/internal/domain/entity"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/lifecycle"
	"greenscore/internal/domain/repository"
	"greenscore/internal/domain/service"
	"greenscore/internal/errors"
	"greenscore/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type purchaseService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	purchaseRepo     repository.PurchaseRepository
	qrcodeService    service.QRCodeService
	idempotencyStore service.IdempotencyStore
	publisher        service.EventPublisher
	metrics          service.LedgerMetrics
	logger           *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	PurchaseRepo     repository.PurchaseRepository
	QRCodeService    service.QRCodeService
	IdempotencyStore service.IdempotencyStore
	Publisher        service.EventPublisher
	Metrics          service.LedgerMetrics
	Logger           *slog.Logger
}

// NewPurchaseService creates a new purchase service instance
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		purchaseRepo:     params.PurchaseRepo,
		qrcodeService:    params.QRCodeService,
		idempotencyStore: params.IdempotencyStore,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

func (s *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RecordPurchase applies the product's sustainability score to the user's green score and appends
// the purchase to the ledger in one transaction. With an idempotency key, a repeated request
// replays the first result instead of recording twice.
func (s *purchaseService) RecordPurchase(ctx context.Context, input *usecase.RecordPurchaseInput) (*entity.Purchase, error) {
	if input.IdempotencyKey == "" {
		return s.recordAndAnnounce(ctx, input)
	}

	stored, err := s.idempotencyStore.Begin(ctx, input.IdempotencyKey)
	if err != nil {
		if errors.Is(err, service.ErrIdempotencyKeyInUse) {
			return nil, domainerrors.ErrIdempotencyKeyInUse
		}

		return nil, errors.Wrap(err, "failed to claim idempotency key")
	}

	if stored != nil {
		if stored.UserID != input.UserID || stored.ProductID != input.ProductID {
			return nil, domainerrors.ErrValidationFailed.WithDetails("idempotency key was already used for a different purchase")
		}

		s.metrics.IncIdempotentReplay()
		s.log(ctx).Info("Replaying purchase for idempotency key", slog.Int64("purchase_id", stored.ID))

		return stored, nil
	}

	purchase, err := s.recordAndAnnounce(ctx, input)

	// The key must settle even when the client is already gone, or retries see it pending.
	settleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err != nil {
		if releaseErr := s.idempotencyStore.Release(settleCtx, input.IdempotencyKey); releaseErr != nil {
			s.log(ctx).Warn("Failed to release idempotency key", slog.Any("error", releaseErr))
		}

		return nil, err
	}

	if err := s.idempotencyStore.Complete(settleCtx, input.IdempotencyKey, purchase); err != nil {
		// The purchase is committed; a retry will see the pending marker until it expires.
		s.log(ctx).Warn("Failed to store idempotency result",
			slog.Int64("purchase_id", purchase.ID),
			slog.Any("error", err),
		)
	}

	return purchase, nil
}

// RecordScannedPurchase records a purchase for the product referenced by a scan code
func (s *purchaseService) RecordScannedPurchase(ctx context.Context, input *usecase.ScanPurchaseInput) (*entity.Purchase, error) {
	productID, err := s.qrcodeService.ParseProductQR(input.ScanData)
	if err != nil {
		s.log(ctx).Debug("Rejected scan code", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidScanCode
	}

	return s.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		UserID:         input.UserID,
		ProductID:      productID,
		IdempotencyKey: input.IdempotencyKey,
	})
}

// ListUserPurchases returns the user's purchases in recording order
func (s *purchaseService) ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseDetail, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, errors.WithMessage(translateNotFound(err), "failed to get user")
	}

	purchases, err := s.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}

func (s *purchaseService) recordAndAnnounce(ctx context.Context, input *usecase.RecordPurchaseInput) (*entity.Purchase, error) {
	purchase, err := s.record(ctx, input)
	if err != nil {
		return nil, err
	}

	s.metrics.ObservePurchase(purchase.Impact)
	s.log(ctx).Info("Purchase recorded",
		slog.Int64("purchase_id", purchase.ID),
		slog.String("user_id", purchase.UserID.String()),
		slog.Float64("impact", purchase.Impact),
	)

	s.announce(ctx, purchase)

	return purchase, nil
}

// record runs the purchase transition inside one transaction. A missing user or product
// returns before any write, so nothing is left to roll back.
func (s *purchaseService) record(ctx context.Context, input *usecase.RecordPurchaseInput) (*entity.Purchase, error) {
	var purchase *entity.Purchase

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
			return errors.WithMessage(translateNotFound(err), "failed to get user")
		}

		product, err := factory.ProductRepo().FindByID(ctx, input.ProductID)
		if err != nil {
			return errors.WithMessage(translateNotFound(err), "failed to get product")
		}

		if _, err := userRepo.AddGreenScore(ctx, input.UserID, product.SustainabilityScore); err != nil {
			return errors.WithMessage(translateNotFound(err), "failed to update green score")
		}

		created := &entity.Purchase{
			UserID:    input.UserID,
			ProductID: product.ID,
			// Stores keep microseconds; truncating keeps the returned value equal to what is read back.
			Timestamp: time.Now().UTC().Truncate(time.Microsecond),
			Impact:    product.SustainabilityScore,
		}
		if err := factory.PurchaseRepo().Create(ctx, created); err != nil {
			return errors.WithMessage(err, "failed to create purchase")
		}

		purchase = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	return purchase, nil
}

// announce publishes the committed purchase. Failures are logged only: the ledger is the source of truth.
func (s *purchaseService) announce(ctx context.Context, purchase *entity.Purchase) {
	event := &service.PurchaseRecordedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		PurchaseID: purchase.ID,
		UserID:     purchase.UserID.String(),
		ProductID:  purchase.ProductID.String(),
		Impact:     purchase.Impact,
		Timestamp:  purchase.Timestamp,
	}

	// Detach from the request so a client disconnect does not drop the event.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.publisher.PublishPurchaseRecorded(publishCtx, event); err != nil {
		s.log(ctx).Error("Failed to publish purchase event",
			slog.Int64("purchase_id", purchase.ID),
			slog.Any("error", err),
		)
	}
}
