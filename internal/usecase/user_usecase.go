package usecase

import (
	"context"

	"greenscore/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput carries the fields needed to register a shopper.
type RegisterUserInput struct {
	PhoneNumber string
	Name        string
}

// GreenScoreOutput is the projection returned by the green-score lookup.
type GreenScoreOutput struct {
	UserID     uuid.UUID
	GreenScore float64
}

// UserUsecase defines the registration and lookup operations on shoppers.
type UserUsecase interface {
	// RegisterUser creates a new user with a zero green score.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// GetUser returns a user by ID
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// GetGreenScore returns the user's current green score
	GetGreenScore(ctx context.Context, userID uuid.UUID) (*GreenScoreOutput, error)
}
