package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	coremocks "github.com/fittrack-app/fittrack-server/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordColumns() []string {
	return []string{"id", "username", "duration_centi", "calories_centi", "date", "created_at"}
}

func newTestRecord(t *testing.T, username string, date time.Time) *entity.CaloriesRecord {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	record, err := entity.NewCaloriesRecord(username, 4550, 32000, date, mockTime)
	require.NoError(t, err)
	return record
}

func TestCaloriesRecordRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	workoutDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Successful insert assigns identifier", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewCaloriesRecordRepository(gormDB, repoTimeProvider(t), noopRepoLogger())

		record := newTestRecord(t, "janedoe", workoutDate)

		mock.ExpectQuery(`INSERT INTO "calories_records"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		created, err := repo.Create(ctx, record)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), created.ID)
		assert.Equal(t, "janedoe", created.Username)
		assert.Equal(t, int64(4550), created.Duration())
		assert.Equal(t, int64(32000), created.Calories())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Constraint violation", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewCaloriesRecordRepository(gormDB, repoTimeProvider(t), noopRepoLogger())

		record := newTestRecord(t, "janedoe", workoutDate)

		mock.ExpectQuery(`INSERT INTO "calories_records"`).
			WillReturnError(errors.New(`ERROR: null value in column "username" violates not-null constraint (SQLSTATE 23502)`))

		created, err := repo.Create(ctx, record)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Connection error", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewCaloriesRecordRepository(gormDB, repoTimeProvider(t), noopRepoLogger())

		record := newTestRecord(t, "janedoe", workoutDate)

		mock.ExpectQuery(`INSERT INTO "calories_records"`).
			WillReturnError(assert.AnError)

		created, err := repo.Create(ctx, record)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCaloriesRecordRepositoryListByUsername(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Rows come back in query order", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewCaloriesRecordRepository(gormDB, repoTimeProvider(t), noopRepoLogger())

		rows := sqlmock.NewRows(recordColumns()).
			AddRow(1, "janedoe", int64(3000), int64(15000), time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), now).
			AddRow(2, "janedoe", int64(4500), int64(20000), time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), now).
			AddRow(3, "janedoe", int64(6000), int64(32050), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), now)
		mock.ExpectQuery(`SELECT \* FROM "calories_records" WHERE username = \$1 ORDER BY date asc`).
			WillReturnRows(rows)

		records, err := repo.ListByUsername(ctx, "janedoe")

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, uint64(1), records[0].ID)
		assert.Equal(t, int64(15000), records[0].Calories())
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), records[2].Date)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No rows yields empty slice", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewCaloriesRecordRepository(gormDB, repoTimeProvider(t), noopRepoLogger())

		mock.ExpectQuery(`SELECT \* FROM "calories_records" WHERE username = \$1 ORDER BY date asc`).
			WillReturnRows(sqlmock.NewRows(recordColumns()))

		records, err := repo.ListByUsername(ctx, "ghost")

		require.NoError(t, err)
		assert.Empty(t, records)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Connection error", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewCaloriesRecordRepository(gormDB, repoTimeProvider(t), noopRepoLogger())

		mock.ExpectQuery(`SELECT \* FROM "calories_records" WHERE username = \$1 ORDER BY date asc`).
			WillReturnError(assert.AnError)

		records, err := repo.ListByUsername(ctx, "janedoe")

		assert.Nil(t, records)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
