package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "greenscore/internal/delivery/context"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/service"
	"greenscore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retryableError wraps an error to indicate the message should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError marks err as transient so transports redeliver the message
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PurchaseEventProcessor audits the user named by a purchase event.
// It is transport-agnostic: the push endpoint and the Kafka consumer both feed it.
type PurchaseEventProcessor struct {
	auditUC usecase.AuditUsecase
	logger  *slog.Logger
}

// PurchaseEventProcessorParams holds dependencies for the PurchaseEventProcessor
type PurchaseEventProcessorParams struct {
	fx.In

	AuditUC usecase.AuditUsecase
	Logger  *slog.Logger
}

// NewPurchaseEventProcessor creates a new purchase event processor
func NewPurchaseEventProcessor(params PurchaseEventProcessorParams) *PurchaseEventProcessor {
	return &PurchaseEventProcessor{
		auditUC: params.AuditUC,
		logger:  params.Logger,
	}
}

// Process decodes one PurchaseRecordedEvent payload and reconciles its user.
// Malformed payloads and unknown users are permanent failures; store errors are retryable.
func (p *PurchaseEventProcessor) Process(ctx context.Context, data []byte, attributes map[string]string) error {
	var event service.PurchaseRecordedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(err, "failed to parse purchase event")
	}

	ctx, logger := deliverycontext.WithRequestScope(ctx, p.logger, extractRequestID(ctx, attributes, &event))

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrapf(err, "invalid user_id %q", event.UserID)
	}

	logger.Info("[Worker] Reconciling user after purchase",
		slog.Int64("purchase_id", event.PurchaseID),
		slog.String("user_id", event.UserID),
	)

	output, err := p.auditUC.ReconcileUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return errors.WithMessage(err, "purchase event references an unknown user")
		}

		return NewRetryableError(err)
	}

	logger.Info("[Worker] Reconciliation finished",
		slog.String("user_id", event.UserID),
		slog.Bool("consistent", output.Consistent),
		slog.Float64("drift", output.Drift),
	)

	return nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.PurchaseRecordedEvent) string {
	// 1. Try message attributes (Pub/Sub attributes or Kafka headers)
	if requestID, ok := attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}
