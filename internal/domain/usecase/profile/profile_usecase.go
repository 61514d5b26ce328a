package profile

import (
	"context"
	"errors"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	coreport "github.com/fittrack-app/fittrack-server/internal/domain/port/core"
	"github.com/fittrack-app/fittrack-server/internal/domain/port/persistence"
	"github.com/fittrack-app/fittrack-server/internal/domain/port/usecase"
)

// Service implements profile read and biometric update logic
type Service struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewService creates a new profile service instance
func NewService(
	userRepo persistence.UserRepository,
	logger coreport.Logger,
) usecase.ProfileUseCase {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUserInfo retrieves the profile for a username
func (s *Service) GetUserInfo(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Error("Failed to load user profile", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	return user, nil
}

// UpdateMetrics stores new height and weight for a username
func (s *Service) UpdateMetrics(ctx context.Context, username string, height, weight float64) error {
	if username == "" {
		return errs.ErrInvalidUsername
	}

	heightCenti, err := entity.FloatToCenti(height)
	if err != nil {
		return &errs.FieldError{Field: "height", Err: err}
	}
	weightCenti, err := entity.FloatToCenti(weight)
	if err != nil {
		return &errs.FieldError{Field: "weight", Err: err}
	}

	affected, err := s.userRepo.UpdateMetrics(ctx, username, heightCenti, weightCenti)
	if err != nil {
		s.logger.Error("Failed to update metrics", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return err
	}

	if affected == 0 {
		s.logger.Warn("Metrics update for unknown username", map[string]any{
			"username": username,
		})
		return errs.ErrUserNotFound
	}

	s.logger.Info("Metrics updated", map[string]any{
		"username": username,
		"height":   entity.CentiToString(heightCenti),
		"weight":   entity.CentiToString(weightCenti),
	})
	return nil
}
