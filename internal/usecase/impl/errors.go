package impl

import (
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/repository"
	"greenscore/internal/errors"
)

// translateNotFound maps repository sentinels to their API errors and leaves everything else untouched.
func translateNotFound(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	default:
		return err
	}
}
