package calories

import (
	"context"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	coreport "github.com/fittrack-app/fittrack-server/internal/domain/port/core"
	"github.com/fittrack-app/fittrack-server/internal/domain/port/persistence"
	"github.com/fittrack-app/fittrack-server/internal/domain/port/usecase"
)

// Service implements workout recording and history retrieval
type Service struct {
	caloriesRepo persistence.CaloriesRecordRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new calories service instance
func NewService(
	caloriesRepo persistence.CaloriesRecordRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.CaloriesUseCase {
	return &Service{
		caloriesRepo: caloriesRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RecordWorkout validates and stores one workout submission
func (s *Service) RecordWorkout(ctx context.Context, input usecase.WorkoutInput) (*entity.CaloriesRecord, error) {
	if input.Username == "" {
		return nil, errs.MissingField("username")
	}

	date, err := entity.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	durationCenti, err := entity.FloatToCenti(input.ExerciseTime)
	if err != nil {
		return nil, &errs.FieldError{Field: "total_exercise_time", Err: err}
	}
	caloriesCenti, err := entity.FloatToCenti(input.CaloriesBurn)
	if err != nil {
		return nil, &errs.FieldError{Field: "calories_burn", Err: err}
	}

	record, err := entity.NewCaloriesRecord(input.Username, durationCenti, caloriesCenti, date, s.timeProvider)
	if err != nil {
		return nil, err
	}

	created, err := s.caloriesRepo.Create(ctx, record)
	if err != nil {
		s.logger.Error("Failed to store workout record", map[string]any{
			"username": input.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Workout recorded", map[string]any{
		"username": created.Username,
		"date":     entity.FormatDate(created.Date),
		"calories": created.GetCalories(),
	})
	return created, nil
}

// GetHistory returns the date/calories parallel arrays for a username,
// ordered ascending by workout date
func (s *Service) GetHistory(ctx context.Context, username string) (*usecase.CaloriesHistory, error) {
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}

	records, err := s.caloriesRepo.ListByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to load calories history", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	if len(records) == 0 {
		return nil, errs.ErrNoRecordsFound
	}

	history := &usecase.CaloriesHistory{
		Dates:        make([]string, 0, len(records)),
		CaloriesBurn: make([]float64, 0, len(records)),
	}
	for _, record := range records {
		history.Dates = append(history.Dates, entity.FormatHistoryDate(record.Date))
		history.CaloriesBurn = append(history.CaloriesBurn, entity.CentiToFloat(record.Calories()))
	}

	return history, nil
}
