package auth

import (
	"context"
	"errors"

	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
)

// Login verifies a username/password pair against the stored hash.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Warn("Login attempt for unknown username", map[string]any{
				"username": username,
			})
			return errs.ErrInvalidCredentials
		}
		s.logger.Error("Failed to load user for login", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("Login attempt with wrong password", map[string]any{
			"username": username,
		})
		return errs.ErrInvalidCredentials
	}

	s.logger.Info("Login successful", map[string]any{
		"username": username,
	})
	return nil
}
