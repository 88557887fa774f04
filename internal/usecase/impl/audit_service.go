package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "greenscore/internal/delivery/context"
	"greenscore/internal/domain/repository"
	"greenscore/internal/domain/service"
	"greenscore/internal/errors"
	"greenscore/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// driftTolerance absorbs floating point error accumulated by repeated additions.
	driftTolerance = 1e-9

	// reconcileAttempts re-reads once, so a purchase committed between the two reads is not reported as drift.
	reconcileAttempts = 2
)

type auditService struct {
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	metrics      service.LedgerMetrics
	logger       *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PurchaseRepo repository.PurchaseRepository
	Metrics      service.LedgerMetrics
	Logger       *slog.Logger
}

// NewAuditService creates a new ledger audit service instance
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		userRepo:     params.UserRepo,
		purchaseRepo: params.PurchaseRepo,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (s *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ReconcileUser compares the stored green score with the sum of the user's purchase impacts
func (s *auditService) ReconcileUser(ctx context.Context, userID uuid.UUID) (*usecase.ReconcileOutput, error) {
	var (
		output *usecase.ReconcileOutput
		err    error
	)

	for range reconcileAttempts {
		output, err = s.compare(ctx, userID)
		if err != nil {
			return nil, err
		}
		if output.Consistent {
			return output, nil
		}
	}

	s.metrics.IncDrift()
	s.log(ctx).Warn("Green score drift detected",
		slog.String("user_id", userID.String()),
		slog.Float64("green_score", output.GreenScore),
		slog.Float64("ledger_total", output.LedgerTotal),
		slog.Float64("drift", output.Drift),
	)

	return output, nil
}

func (s *auditService) compare(ctx context.Context, userID uuid.UUID) (*usecase.ReconcileOutput, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.WithMessage(translateNotFound(err), "failed to get user")
	}

	total, err := s.purchaseRepo.SumImpactByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum purchase impact")
	}

	drift := user.GreenScore - total

	return &usecase.ReconcileOutput{
		UserID:      userID,
		GreenScore:  user.GreenScore,
		LedgerTotal: total,
		Drift:       drift,
		Consistent:  math.Abs(drift) <= driftTolerance,
	}, nil
}
