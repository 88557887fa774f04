// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"greenscore/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatePhoneNumber is returned when the phone number is already taken.
	ErrDuplicatePhoneNumber = errors.New("phone number already registered")
)

// UserRepository is the Identity Store.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByPhoneNumber retrieves a single user by their phone number.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// AddGreenScore atomically adds delta to the user's green score and returns the new score.
	AddGreenScore(ctx context.Context, id uuid.UUID, delta float64) (float64, error)
}
