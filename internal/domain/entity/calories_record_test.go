package entity

import (
	"testing"
	"time"

	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	coremocks "github.com/fittrack-app/fittrack-server/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCaloriesRecord(t *testing.T) {
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	workoutDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		record, err := NewCaloriesRecord("janedoe", 4550, 32000, workoutDate, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "janedoe", record.Username)
		assert.Equal(t, int64(4550), record.Duration())
		assert.Equal(t, int64(32000), record.Calories())
		assert.Equal(t, "45.50", record.GetDuration())
		assert.Equal(t, "320.00", record.GetCalories())
		assert.Equal(t, workoutDate, record.Date)
		assert.Equal(t, fixedTime, record.CreatedAt)
	})

	t.Run("Empty username", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		record, err := NewCaloriesRecord("", 4550, 32000, workoutDate, mockTime)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
	})

	t.Run("Negative measurement", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		record, err := NewCaloriesRecord("janedoe", -1, 32000, workoutDate, mockTime)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, errs.ErrNegativeMeasurement)
	})

	t.Run("Measurement overflow", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		record, err := NewCaloriesRecord("janedoe", 4550, MaxCentiValue+1, workoutDate, mockTime)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, errs.ErrMeasurementOverflow)
	})
}
