package auth

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
)

// ChangePassword verifies the old password before storing a hash of the new
// one. An unknown username reports ErrPasswordMismatch, not ErrUserNotFound:
// the wire contract does not distinguish the two at verification time.
// ErrUserNotFound is reserved for the row vanishing between the check and
// the update.
func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Warn("Password change for unknown username", map[string]any{
				"username": username,
			})
			return errs.ErrPasswordMismatch
		}
		s.logger.Error("Failed to load user for password change", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		s.logger.Warn("Password change with wrong old password", map[string]any{
			"username": username,
		})
		return errs.ErrPasswordMismatch
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error("Failed to hash new password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	affected, err := s.userRepo.UpdatePassword(ctx, username, newHash)
	if err != nil {
		s.logger.Error("Failed to update password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return err
	}

	if affected == 0 {
		s.logger.Warn("User row vanished during password change", map[string]any{
			"username": username,
		})
		return errs.ErrUserNotFound
	}

	s.logger.Info("Password updated", map[string]any{
		"username": username,
	})
	return nil
}
