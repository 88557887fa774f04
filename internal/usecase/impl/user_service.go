package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "greenscore/internal/delivery/context"
	"greenscore/internal/domain/entity"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/repository"
	"greenscore/internal/domain/service"
	"greenscore/internal/errors"
	"greenscore/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type userService struct {
	userRepo repository.UserRepository
	metrics  service.LedgerMetrics
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Metrics  service.LedgerMetrics
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser validates the input and creates a user with a zero green score.
// The phone number check before insert gives a clean error for the common case;
// the unique index still decides races between concurrent registrations.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if !entity.IsValidPhoneNumber(input.PhoneNumber) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone_number must be exactly 10 digits")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}

	_, err := srv.userRepo.FindByPhoneNumber(ctx, input.PhoneNumber)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Phone number already registered")

		return nil, domainerrors.ErrPhoneAlreadyRegistered
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up phone number")
	}

	user := &entity.User{
		ID:          uuid.New(),
		PhoneNumber: input.PhoneNumber,
		Name:        input.Name,
		GreenScore:  0,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhoneNumber) {
			srv.log(ctx).Warn("Phone number registered concurrently")

			return nil, domainerrors.ErrPhoneAlreadyRegistered
		}
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.metrics.IncRegistration()
	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return user, nil
}

// GetUser returns a user by ID
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.WithMessage(translateNotFound(err), "failed to get user")
	}

	return user, nil
}

// GetGreenScore returns the user's current green score
func (srv *userService) GetGreenScore(ctx context.Context, userID uuid.UUID) (*usecase.GreenScoreOutput, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.GreenScoreOutput{
		UserID:     user.ID,
		GreenScore: user.GreenScore,
	}, nil
}
