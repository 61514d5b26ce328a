package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	authUseCase "github.com/fittrack-app/fittrack-server/internal/domain/usecase/auth"
	"github.com/fittrack-app/fittrack-server/internal/infrastructure/adapter/logger"
	coremocks "github.com/fittrack-app/fittrack-server/mocks/port/core"
	persistencemocks "github.com/fittrack-app/fittrack-server/mocks/port/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authTestServer wires an AuthHandler onto the real auth service with
// mocked persistence and hashing
func authTestServer(t *testing.T, mockRepo *persistencemocks.MockUserRepository, mockHasher *coremocks.MockPasswordHasher) *gin.Engine {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	noopLogger := logger.NewNoopLogger()
	authService := authUseCase.NewService(mockRepo, mockHasher, mockTime, noopLogger)
	authHandler := NewAuthHandler(authService, noopLogger)

	router := gin.New()
	router.POST("/api/login_data", authHandler.Login)
	router.POST("/api/signup_data", authHandler.Signup)
	router.POST("/updatePassword", authHandler.UpdatePassword)
	return router
}

func handlerStoredUser(t *testing.T, username, passwordHash string) *entity.User {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	user, err := entity.NewUser(
		"Jane Doe", username, username+"@example.com",
		passwordHash, "9812345678",
		time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), "female",
		16050, 5500,
		mockTime,
	)
	require.NoError(t, err)
	return user
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Successful login", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		user := handlerStoredUser(t, "janedoe", "stored-hash")
		mockRepo.EXPECT().GetByUsername(mock.Anything, "janedoe").Return(user, nil).Once()
		mockHasher.EXPECT().Verify("secret123", "stored-hash").Return(true).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/api/login_data", gin.H{
			"username": "janedoe",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"success":true,"message":"Login successful"}`, recorder.Body.String())
	})

	t.Run("Missing credentials", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/api/login_data", gin.H{"username": "janedoe"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Username and password are required")
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		user := handlerStoredUser(t, "janedoe", "stored-hash")
		mockRepo.EXPECT().GetByUsername(mock.Anything, "janedoe").Return(user, nil).Once()
		mockHasher.EXPECT().Verify("wrong", "stored-hash").Return(false).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/api/login_data", gin.H{
			"username": "janedoe",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.JSONEq(t, `{"success":false,"error":"Invalid username or password"}`, recorder.Body.String())
	})

	t.Run("Unknown username is indistinguishable", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		mockRepo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/api/login_data", gin.H{
			"username": "ghost",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.JSONEq(t, `{"success":false,"error":"Invalid username or password"}`, recorder.Body.String())
	})
}

func TestSignupEndpoint(t *testing.T) {
	validPayload := func() gin.H {
		return gin.H{
			"name":             "Jane Doe",
			"username":         "janedoe",
			"email":            "jane@example.com",
			"new_password":     "secret123",
			"confirm_password": "secret123",
			"mobile_number":    "9812345678",
			"date_of_birth":    "1995-06-15",
			"gender":           "female",
			"height":           160.5,
			"weight":           55,
		}
	}

	t.Run("Successful signup echoes stored fields", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		mockHasher.EXPECT().Hash("secret123").Return("$2a$10$hash", nil).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, user *entity.User) (*entity.User, error) {
				user.ID = 1
				return user, nil
			}).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/api/signup_data", validPayload())

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "janedoe", response["Username"])
		assert.Equal(t, "secret123", response["New_password"])
		assert.Equal(t, "$2a$10$hash", response["Password"])
		assert.Equal(t, "1995-06-15", response["DateOfBirth"])
		assert.Equal(t, 160.5, response["Height"])
		assert.Equal(t, 55.0, response["Weight"])
	})

	t.Run("Missing field", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		router := authTestServer(t, mockRepo, mockHasher)

		payload := validPayload()
		delete(payload, "email")
		recorder := postJSON(router, "/api/signup_data", payload)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "email")
	})

	t.Run("Absent measurements fault like other missing fields", func(t *testing.T) {
		for _, field := range []string{"height", "weight"} {
			t.Run(field, func(t *testing.T) {
				mockRepo := persistencemocks.NewMockUserRepository(t)
				mockHasher := coremocks.NewMockPasswordHasher(t)

				router := authTestServer(t, mockRepo, mockHasher)

				payload := validPayload()
				delete(payload, field)
				recorder := postJSON(router, "/api/signup_data", payload)

				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Contains(t, recorder.Body.String(), field)
			})
		}
	})

	t.Run("Invalid date of birth", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		router := authTestServer(t, mockRepo, mockHasher)

		payload := validPayload()
		payload["date_of_birth"] = "15/06/1995"
		recorder := postJSON(router, "/api/signup_data", payload)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Duplicate username surfaces as server error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		mockHasher.EXPECT().Hash("secret123").Return("$2a$10$hash", nil).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateUser).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/api/signup_data", validPayload())

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	payload := gin.H{
		"username":         "janedoe",
		"password":         "oldpass",
		"confirm_password": "newpass",
	}

	t.Run("Successful update returns 201", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		user := handlerStoredUser(t, "janedoe", "old-hash")
		mockRepo.EXPECT().GetByUsername(mock.Anything, "janedoe").Return(user, nil).Once()
		mockHasher.EXPECT().Verify("oldpass", "old-hash").Return(true).Once()
		mockHasher.EXPECT().Hash("newpass").Return("new-hash", nil).Once()
		mockRepo.EXPECT().UpdatePassword(mock.Anything, "janedoe", "new-hash").Return(1, nil).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/updatePassword", payload)

		assert.Equal(t, StatusPasswordUpdated, recorder.Code)
		assert.JSONEq(t, `{"message":"Password Updated Successfully"}`, recorder.Body.String())
	})

	t.Run("Old password mismatch returns 202", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		user := handlerStoredUser(t, "janedoe", "old-hash")
		mockRepo.EXPECT().GetByUsername(mock.Anything, "janedoe").Return(user, nil).Once()
		mockHasher.EXPECT().Verify("oldpass", "old-hash").Return(false).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/updatePassword", payload)

		assert.Equal(t, StatusOldPasswordMismatch, recorder.Code)
		assert.JSONEq(t, `{"success":false,"error":"Old password did not matched"}`, recorder.Body.String())
	})

	t.Run("Unknown username returns 202", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		mockRepo.EXPECT().GetByUsername(mock.Anything, "janedoe").Return(nil, errs.ErrUserNotFound).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/updatePassword", payload)

		assert.Equal(t, StatusOldPasswordMismatch, recorder.Code)
	})

	t.Run("Row vanished returns 203", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		user := handlerStoredUser(t, "janedoe", "old-hash")
		mockRepo.EXPECT().GetByUsername(mock.Anything, "janedoe").Return(user, nil).Once()
		mockHasher.EXPECT().Verify("oldpass", "old-hash").Return(true).Once()
		mockHasher.EXPECT().Hash("newpass").Return("new-hash", nil).Once()
		mockRepo.EXPECT().UpdatePassword(mock.Anything, "janedoe", "new-hash").Return(0, nil).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/updatePassword", payload)

		assert.Equal(t, StatusUserRowVanished, recorder.Code)
	})

	t.Run("Store error returns 204", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)

		user := handlerStoredUser(t, "janedoe", "old-hash")
		mockRepo.EXPECT().GetByUsername(mock.Anything, "janedoe").Return(user, nil).Once()
		mockHasher.EXPECT().Verify("oldpass", "old-hash").Return(true).Once()
		mockHasher.EXPECT().Hash("newpass").Return("new-hash", nil).Once()
		mockRepo.EXPECT().UpdatePassword(mock.Anything, "janedoe", "new-hash").
			Return(0, errors.New("database update error")).Once()

		router := authTestServer(t, mockRepo, mockHasher)

		recorder := postJSON(router, "/updatePassword", payload)

		assert.Equal(t, StatusPasswordStoreError, recorder.Code)
	})
}
