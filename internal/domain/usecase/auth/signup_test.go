package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	"github.com/fittrack-app/fittrack-server/internal/domain/port/usecase"
	coremocks "github.com/fittrack-app/fittrack-server/mocks/port/core"
	persistencemocks "github.com/fittrack-app/fittrack-server/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSignupInput() usecase.SignupInput {
	return usecase.SignupInput{
		Name:            "Jane Doe",
		Username:        "janedoe",
		Email:           "jane@example.com",
		NewPassword:     "secret123",
		ConfirmPassword: "secret123",
		Mobile:          "9812345678",
		DateOfBirth:     "1995-06-15",
		Gender:          "female",
		Height:          160.5,
		Weight:          55,
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful signup", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// The hash is taken over the confirm_password field
		mockHasher.EXPECT().Hash("secret123").Return("$2a$10$hash", nil).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "janedoe" &&
				user.PasswordHash == "$2a$10$hash" &&
				user.GetHeight() == "160.50" &&
				user.GetWeight() == "55.00"
		})).RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, error) {
			user.ID = 1
			return user, nil
		}).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		authService := NewService(mockRepo, mockHasher, mockTime, mockLogger)

		// Execute
		created, err := authService.Signup(ctx, validSignupInput())

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, uint64(1), created.ID)
		assert.Equal(t, "janedoe", created.Username)
		assert.Equal(t, time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), created.DateOfBirth)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		fields := []struct {
			name   string
			mutate func(*usecase.SignupInput)
		}{
			{"name", func(in *usecase.SignupInput) { in.Name = "" }},
			{"username", func(in *usecase.SignupInput) { in.Username = "" }},
			{"email", func(in *usecase.SignupInput) { in.Email = "" }},
			{"new_password", func(in *usecase.SignupInput) { in.NewPassword = "" }},
			{"confirm_password", func(in *usecase.SignupInput) { in.ConfirmPassword = "" }},
			{"mobile_number", func(in *usecase.SignupInput) { in.Mobile = "" }},
			{"date_of_birth", func(in *usecase.SignupInput) { in.DateOfBirth = "" }},
			{"gender", func(in *usecase.SignupInput) { in.Gender = "" }},
		}

		for _, field := range fields {
			t.Run(field.name, func(t *testing.T) {
				mockRepo := persistencemocks.NewMockUserRepository(t)
				mockHasher := coremocks.NewMockPasswordHasher(t)
				mockTime := coremocks.NewMockTimeProvider(t)
				mockLogger := coremocks.NewMockLogger(t)

				input := validSignupInput()
				field.mutate(&input)

				authService := NewService(mockRepo, mockHasher, mockTime, mockLogger)

				created, err := authService.Signup(ctx, input)

				assert.Nil(t, created)
				assert.ErrorIs(t, err, errs.ErrMissingField)
			})
		}
	})

	t.Run("Invalid date of birth", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		input := validSignupInput()
		input.DateOfBirth = "15-06-1995"

		authService := NewService(mockRepo, mockHasher, mockTime, mockLogger)

		created, err := authService.Signup(ctx, input)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("Invalid height", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		input := validSignupInput()
		input.Height = -1

		authService := NewService(mockRepo, mockHasher, mockTime, mockLogger)

		created, err := authService.Signup(ctx, input)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrNegativeMeasurement)
	})

	t.Run("Hashing failure", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockHasher.EXPECT().Hash("secret123").Return("", errors.New("cost out of range")).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		authService := NewService(mockRepo, mockHasher, mockTime, mockLogger)

		created, err := authService.Signup(ctx, validSignupInput())

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockHasher.EXPECT().Hash("secret123").Return("$2a$10$hash", nil).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateUser).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		authService := NewService(mockRepo, mockHasher, mockTime, mockLogger)

		created, err := authService.Signup(ctx, validSignupInput())

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}
