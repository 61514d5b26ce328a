package repository

import (
	"context"
	"fmt"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	coreport "github.com/fittrack-app/fittrack-server/internal/domain/port/core"
	"github.com/fittrack-app/fittrack-server/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Find returns an empty slice (not gorm.ErrRecordNotFound) when a username
// has no records; the use case layer decides whether that is an error.

// CaloriesRecordRepository implements the CaloriesRecordRepository interface using GORM
type CaloriesRecordRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCaloriesRecordRepository creates a new CaloriesRecordRepository instance
func NewCaloriesRecordRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CaloriesRecordRepository {
	return &CaloriesRecordRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a record model to an entity
func (r *CaloriesRecordRepository) modelToEntity(recordModel *model.CaloriesRecord) (*entity.CaloriesRecord, error) {
	record, err := entity.NewCaloriesRecord(
		recordModel.Username,
		recordModel.DurationCenti,
		recordModel.CaloriesCenti,
		recordModel.Date,
		r.timeProvider,
	)
	if err != nil {
		r.logger.Error("Failed to create record entity", map[string]any{
			"username": recordModel.Username,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create record entity: %s", errs.ErrInternalServer, err.Error())
	}

	record.ID = recordModel.ID
	record.CreatedAt = recordModel.CreatedAt

	return record, nil
}

// handleDatabaseError standardizes database error handling
func (r *CaloriesRecordRepository) handleDatabaseError(operation string, err error, username string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"username": username,
		"error":    err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a workout record and returns it with the assigned identifier
func (r *CaloriesRecordRepository) Create(ctx context.Context, record *entity.CaloriesRecord) (*entity.CaloriesRecord, error) {
	r.logger.Debug("Creating workout record", map[string]any{
		"username": record.Username,
		"date":     entity.FormatDate(record.Date),
	})

	recordModel := model.CaloriesRecord{
		Username:      record.Username,
		DurationCenti: record.Duration(),
		CaloriesCenti: record.Calories(),
		Date:          record.Date,
		CreatedAt:     record.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&recordModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("creating workout record", result.Error, record.Username)
	}

	r.logger.Info("Workout record created", map[string]any{
		"username":  record.Username,
		"record_id": recordModel.ID,
	})

	return r.modelToEntity(&recordModel)
}

// ListByUsername returns all records for a username ordered ascending by date
func (r *CaloriesRecordRepository) ListByUsername(ctx context.Context, username string) ([]*entity.CaloriesRecord, error) {
	r.logger.Debug("Listing workout records", map[string]any{
		"username": username,
	})

	var recordModels []model.CaloriesRecord
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("date asc").
		Find(&recordModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing workout records", result.Error, username)
	}

	records := make([]*entity.CaloriesRecord, 0, len(recordModels))
	for i := range recordModels {
		record, err := r.modelToEntity(&recordModels[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
