package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	profileUseCase "github.com/fittrack-app/fittrack-server/internal/domain/usecase/profile"
	"github.com/fittrack-app/fittrack-server/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/fittrack-app/fittrack-server/mocks/port/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userTestServer wires a UserHandler onto the real profile service with a
// mocked repository
func userTestServer(t *testing.T, mockRepo *persistencemocks.MockUserRepository) *gin.Engine {
	t.Helper()

	noopLogger := logger.NewNoopLogger()
	profileService := profileUseCase.NewService(mockRepo, noopLogger)
	userHandler := NewUserHandler(profileService, noopLogger)

	router := gin.New()
	router.GET("/user_info/:username", userHandler.GetUserInfo)
	router.POST("/update", userHandler.UpdateMetrics)
	return router
}

func TestGetUserInfoEndpoint(t *testing.T) {
	t.Run("Successful lookup", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)

		user := handlerStoredUser(t, "janedoe", "$2a$10$hash")
		mockRepo.EXPECT().GetByUsername(mock.Anything, "janedoe").Return(user, nil).Once()

		router := userTestServer(t, mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/user_info/janedoe", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "janedoe", response["username"])
		assert.Equal(t, "1995-06-15", response["dateofbirth"])
		assert.Equal(t, "160.50", response["height"])
		assert.Equal(t, "55.00", response["weight"])
		// The stored hash never leaves the profile endpoint
		assert.NotContains(t, recorder.Body.String(), "$2a$10$hash")
	})

	t.Run("Unknown username", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)

		mockRepo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		router := userTestServer(t, mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/user_info/ghost", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "User not found")
	})

	t.Run("Store error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)

		mockRepo.EXPECT().GetByUsername(mock.Anything, "janedoe").
			Return(nil, errors.New("database connection error")).Once()

		router := userTestServer(t, mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/user_info/janedoe", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Internal server error")
	})
}

func TestUpdateMetricsEndpoint(t *testing.T) {
	t.Run("Successful update", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)

		mockRepo.EXPECT().UpdateMetrics(mock.Anything, "janedoe", int64(17000), int64(6050)).Return(1, nil).Once()

		router := userTestServer(t, mockRepo)

		recorder := postJSON(router, "/update", gin.H{
			"username": "janedoe",
			"height":   170,
			"weight":   60.5,
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message":"Height and weight updated successfully!"}`, recorder.Body.String())
	})

	t.Run("Missing data", func(t *testing.T) {
		testCases := []struct {
			name    string
			payload gin.H
		}{
			{"no username", gin.H{"height": 170, "weight": 60.5}},
			{"no height", gin.H{"username": "janedoe", "weight": 60.5}},
			{"no weight", gin.H{"username": "janedoe", "height": 170}},
			{"zero height counts as missing", gin.H{"username": "janedoe", "height": 0, "weight": 60.5}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockRepo := persistencemocks.NewMockUserRepository(t)
				router := userTestServer(t, mockRepo)

				recorder := postJSON(router, "/update", tc.payload)

				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Contains(t, recorder.Body.String(), "Missing required data")
			})
		}
	})

	t.Run("Overflowing height is rejected before the store", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		router := userTestServer(t, mockRepo)

		recorder := postJSON(router, "/update", gin.H{
			"username": "janedoe",
			"height":   1e18,
			"weight":   60.5,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Unknown username", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)

		mockRepo.EXPECT().UpdateMetrics(mock.Anything, "ghost", int64(17000), int64(6050)).Return(0, nil).Once()

		router := userTestServer(t, mockRepo)

		recorder := postJSON(router, "/update", gin.H{
			"username": "ghost",
			"height":   170,
			"weight":   60.5,
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "User not found")
	})

	t.Run("Store error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)

		mockRepo.EXPECT().UpdateMetrics(mock.Anything, "janedoe", int64(17000), int64(6050)).
			Return(0, errors.New("database update error")).Once()

		router := userTestServer(t, mockRepo)

		recorder := postJSON(router, "/update", gin.H{
			"username": "janedoe",
			"height":   170,
			"weight":   60.5,
		})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
