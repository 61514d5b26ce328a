package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	coreport "github.com/fittrack-app/fittrack-server/internal/domain/port/core"
	"github.com/fittrack-app/fittrack-server/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.NewUser(
		userModel.Name,
		userModel.Username,
		userModel.Email,
		userModel.PasswordHash,
		userModel.Mobile,
		userModel.DateOfBirth,
		userModel.Gender,
		userModel.HeightCenti,
		userModel.WeightCenti,
		r.timeProvider,
	)
	if err != nil {
		r.logger.Error("Failed to create user entity", map[string]any{
			"username": userModel.Username,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create user entity: %s", errs.ErrInternalServer, err.Error())
	}

	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, username string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"username": username,
		"error":    err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"username": username,
		})
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate username", map[string]any{
			"username": username,
		})
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.logger.Debug("Getting user by username", map[string]any{
		"username": username,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user", result.Error, username)
	}

	return r.modelToEntity(&userModel)
}

// Create inserts a new user and returns it with the assigned identifier
func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.logger.Debug("Creating new user", map[string]any{
		"username": user.Username,
	})

	userModel := model.User{
		Name:         user.Name,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Mobile:       user.Mobile,
		DateOfBirth:  user.DateOfBirth,
		Gender:       user.Gender,
		HeightCenti:  user.Height(),
		WeightCenti:  user.Weight(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("creating user", result.Error, user.Username)
	}

	r.logger.Info("User created successfully", map[string]any{
		"username": user.Username,
		"user_id":  userModel.ID,
	})

	return r.modelToEntity(&userModel)
}

// UpdateMetrics sets height and weight for a username and returns rows affected
func (r *UserRepository) UpdateMetrics(ctx context.Context, username string, heightCenti, weightCenti int64) (int64, error) {
	r.logger.Debug("Updating user metrics", map[string]any{
		"username": username,
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"height_centi": heightCenti,
			"weight_centi": weightCenti,
			"updated_at":   r.timeProvider.Now(),
		})

	if result.Error != nil {
		return 0, r.handleDatabaseError("updating metrics", result.Error, username)
	}

	return result.RowsAffected, nil
}

// UpdatePassword replaces the stored hash for a username and returns rows affected
func (r *UserRepository) UpdatePassword(ctx context.Context, username string, newHash string) (int64, error) {
	r.logger.Debug("Updating user password", map[string]any{
		"username": username,
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"password_hash": newHash,
			"updated_at":    r.timeProvider.Now(),
		})

	if result.Error != nil {
		return 0, r.handleDatabaseError("updating password", result.Error, username)
	}

	return result.RowsAffected, nil
}
