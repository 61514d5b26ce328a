package usecase

import (
	"context"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
)

// ProfileUseCase defines profile read and biometric update operations
type ProfileUseCase interface {
	// GetUserInfo retrieves the profile for a username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given username
	GetUserInfo(ctx context.Context, username string) (*entity.User, error)

	// UpdateMetrics stores new height and weight for a username
	//
	// Possible errors:
	// - ErrInvalidMeasurement / ErrNegativeMeasurement on bad values
	// - ErrUserNotFound: If no row was updated
	// - ErrDatabaseConnection: store failure during the update
	UpdateMetrics(ctx context.Context, username string, height, weight float64) error
}
