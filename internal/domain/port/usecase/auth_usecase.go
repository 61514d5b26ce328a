package usecase

import (
	"context"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
)

// SignupInput carries the raw signup payload into the auth use case.
// Measurements arrive as JSON numbers; dates as YYYY-MM-DD strings.
type SignupInput struct {
	Name            string
	Username        string
	Email           string
	NewPassword     string
	ConfirmPassword string
	Mobile          string
	DateOfBirth     string
	Gender          string
	Height          float64
	Weight          float64
}

// AuthUseCase defines credential-related business operations
type AuthUseCase interface {
	// Login verifies a username/password pair
	// Returns nil on success, ErrInvalidCredentials when the user is unknown
	// or the password does not match
	Login(ctx context.Context, username, password string) error

	// Signup validates the payload, hashes the password and stores the user
	// Returns the stored user (with assigned identifier and hash)
	//
	// Possible errors:
	// - ErrMissingField / ErrInvalidMeasurement / ErrInvalidDate on bad input
	// - ErrDuplicateUser when the username is already taken
	Signup(ctx context.Context, input SignupInput) (*entity.User, error)

	// ChangePassword verifies the old password and stores a hash of the new one
	//
	// Possible errors:
	// - ErrPasswordMismatch: old password wrong or username unknown
	// - ErrUserNotFound: row vanished between verification and update
	// - ErrDatabaseConnection: store failure during the update
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}
