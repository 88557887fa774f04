package gormstore

import (
	"context"

	"greenscore/internal/domain/entity"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/repository"
	"greenscore/internal/errors"
	"greenscore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByPhoneNumber retrieves a single user by phone number.
func (repo *userRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone number")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. A second user with the same phone number is rejected by the unique index.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePhoneNumber
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// AddGreenScore applies delta with a single UPDATE so concurrent purchases never lose an increment,
// then reads the committed value back inside the same transaction.
func (repo *userRepository) AddGreenScore(ctx context.Context, id uuid.UUID, delta float64) (float64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("green_score", gorm.Expr("green_score + ?", delta))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update green score")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrUserNotFound
	}

	var score float64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Pluck("green_score", &score).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to read green score")
	}

	return score, nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	if userM == nil {
		return nil
	}

	return &entity.User{
		ID:          userM.ID,
		PhoneNumber: userM.PhoneNumber,
		Name:        userM.Name,
		GreenScore:  userM.GreenScore,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	if user == nil {
		return nil
	}

	return &model.UserModel{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		Name:        user.Name,
		GreenScore:  user.GreenScore,
	}
}
