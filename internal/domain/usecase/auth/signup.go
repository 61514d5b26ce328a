package auth

import (
	"context"
	"fmt"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	"github.com/fittrack-app/fittrack-server/internal/domain/port/usecase"
)

// Signup validates the payload, hashes the password and stores the user.
// The hash is taken over ConfirmPassword, matching the existing mobile
// client's behavior.
func (s *Service) Signup(ctx context.Context, input usecase.SignupInput) (*entity.User, error) {
	if err := validateSignupInput(input); err != nil {
		return nil, err
	}

	dateOfBirth, err := entity.ParseDate(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	heightCenti, err := entity.FloatToCenti(input.Height)
	if err != nil {
		return nil, &errs.FieldError{Field: "height", Err: err}
	}
	weightCenti, err := entity.FloatToCenti(input.Weight)
	if err != nil {
		return nil, &errs.FieldError{Field: "weight", Err: err}
	}

	hash, err := s.hasher.Hash(input.ConfirmPassword)
	if err != nil {
		s.logger.Error("Failed to hash password during signup", map[string]any{
			"username": input.Username,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	user, err := entity.NewUser(
		input.Name,
		input.Username,
		input.Email,
		hash,
		input.Mobile,
		dateOfBirth,
		input.Gender,
		heightCenti,
		weightCenti,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"username": input.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User signed up", map[string]any{
		"username": created.Username,
		"user_id":  created.ID,
	})
	return created, nil
}

// validateSignupInput checks that every required field is present
func validateSignupInput(input usecase.SignupInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"username", input.Username},
		{"email", input.Email},
		{"new_password", input.NewPassword},
		{"confirm_password", input.ConfirmPassword},
		{"mobile_number", input.Mobile},
		{"date_of_birth", input.DateOfBirth},
		{"gender", input.Gender},
	}

	for _, field := range required {
		if field.value == "" {
			return errs.MissingField(field.name)
		}
	}
	return nil
}
