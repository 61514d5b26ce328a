package persistence

import (
	"context"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
)

// CaloriesRecordRepository defines methods to interact with workout records
type CaloriesRecordRepository interface {
	// Create inserts a workout record and returns it with the assigned identifier
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, record *entity.CaloriesRecord) (*entity.CaloriesRecord, error)

	// ListByUsername returns all records for a username ordered ascending by
	// date; an empty slice (not an error) when the username has no records
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUsername(ctx context.Context, username string) ([]*entity.CaloriesRecord, error)
}
