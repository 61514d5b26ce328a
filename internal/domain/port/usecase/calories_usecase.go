package usecase

import (
	"context"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
)

// WorkoutInput carries one workout submission into the calories use case
type WorkoutInput struct {
	Username     string
	ExerciseTime float64
	CaloriesBurn float64
	Date         string // YYYY-MM-DD
}

// CaloriesHistory holds the parallel arrays served by the history endpoint,
// both ordered ascending by workout date
type CaloriesHistory struct {
	Dates        []string  `json:"date"`         // MM-DD
	CaloriesBurn []float64 `json:"caloriesburn"` // matching calorie values
}

// CaloriesUseCase defines workout recording and history retrieval
type CaloriesUseCase interface {
	// RecordWorkout validates and stores one workout submission
	//
	// Possible errors:
	// - ErrMissingField / ErrInvalidMeasurement / ErrInvalidDate on bad input
	// - ErrDatabaseConnection: store failure during the insert
	RecordWorkout(ctx context.Context, input WorkoutInput) (*entity.CaloriesRecord, error)

	// GetHistory returns the date/calories parallel arrays for a username
	//
	// Possible errors:
	// - ErrNoRecordsFound: If the username has no records
	// - ErrDatabaseConnection: store failure during the scan
	GetHistory(ctx context.Context, username string) (*CaloriesHistory, error)
}
