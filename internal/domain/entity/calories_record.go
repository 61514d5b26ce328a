package entity

import (
	"time"

	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	coreport "github.com/fittrack-app/fittrack-server/internal/domain/port/core"
)

// CaloriesRecord represents one workout submission. Records are immutable
// once created; history retrieval orders them ascending by Date.
type CaloriesRecord struct {
	ID            uint64    // Unique identifier assigned by the store
	Username      string    // Owning username (by value, no enforced constraint)
	durationCenti int64     // Workout duration in centi-units
	caloriesCenti int64     // Calories burned in centi-units
	Date          time.Time // Workout date (date precision)
	CreatedAt     time.Time // When the record was created
}

// NewCaloriesRecord creates a workout record with validated measurements.
// Duration and calories are given in centi-units (see measurement.go).
func NewCaloriesRecord(
	username string,
	durationCenti, caloriesCenti int64,
	date time.Time,
	timeProvider coreport.TimeProvider,
) (*CaloriesRecord, error) {
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}
	if durationCenti < 0 || caloriesCenti < 0 {
		return nil, errs.ErrNegativeMeasurement
	}
	if durationCenti > MaxCentiValue || caloriesCenti > MaxCentiValue {
		return nil, errs.ErrMeasurementOverflow
	}

	return &CaloriesRecord{
		Username:      username,
		durationCenti: durationCenti,
		caloriesCenti: caloriesCenti,
		Date:          date,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// Duration returns the workout duration in centi-units (for internal use)
func (r *CaloriesRecord) Duration() int64 {
	return r.durationCenti
}

// Calories returns the calories burned in centi-units (for internal use)
func (r *CaloriesRecord) Calories() int64 {
	return r.caloriesCenti
}

// GetDuration returns the duration as a string with 2 decimal places
func (r *CaloriesRecord) GetDuration() string {
	return CentiToString(r.durationCenti)
}

// GetCalories returns the calories burned as a string with 2 decimal places
func (r *CaloriesRecord) GetCalories() string {
	return CentiToString(r.caloriesCenti)
}
