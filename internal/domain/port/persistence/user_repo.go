package persistence

import (
	"context"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data.
// Username is the natural key for every lookup and update.
type UserRepository interface {
	// GetByUsername retrieves a user by username
	// Used for login, profile reads and password verification
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create inserts a new user and returns it with the assigned identifier
	// Used for the POST /api/signup_data endpoint
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// UpdateMetrics sets height and weight (centi-units) for a username and
	// returns the number of rows affected; 0 means the username was not found
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	UpdateMetrics(ctx context.Context, username string, heightCenti, weightCenti int64) (int64, error)

	// UpdatePassword replaces the stored hash for a username and returns the
	// number of rows affected; 0 means the username was not found
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	UpdatePassword(ctx context.Context, username string, newHash string) (int64, error)
}
