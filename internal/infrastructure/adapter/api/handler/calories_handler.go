package handler

import (
	"errors"
	"net/http"

	"github.com/fittrack-app/fittrack-server/internal/domain/entity"
	domainerr "github.com/fittrack-app/fittrack-server/internal/domain/error"
	coreport "github.com/fittrack-app/fittrack-server/internal/domain/port/core"
	"github.com/fittrack-app/fittrack-server/internal/domain/port/usecase"
	"github.com/fittrack-app/fittrack-server/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CaloriesHandler handles workout-record HTTP requests
type CaloriesHandler struct {
	caloriesUseCase usecase.CaloriesUseCase
	logger          coreport.Logger
}

// NewCaloriesHandler creates a new calories handler instance
func NewCaloriesHandler(caloriesUseCase usecase.CaloriesUseCase, logger coreport.Logger) *CaloriesHandler {
	return &CaloriesHandler{
		caloriesUseCase: caloriesUseCase,
		logger:          logger,
	}
}

// InsertCaloriesData handles the POST /api/insertCaloriesData endpoint
func (h *CaloriesHandler) InsertCaloriesData(c *gin.Context) {
	var req dto.InsertCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.CodeMissingField,
			Error: "Invalid request body",
		})
		return
	}

	record, err := h.caloriesUseCase.RecordWorkout(c.Request.Context(), usecase.WorkoutInput{
		Username:     req.Username,
		ExerciseTime: req.TotalExerciseTime,
		CaloriesBurn: req.CaloriesBurn,
		Date:         req.Date,
	})
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(err),
				Error: err.Error(),
			})
			return
		}

		// Store faults on insert were unhandled server faults in the
		// original contract; a structured 500 is the closest analog.
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.InsertCaloriesResponse{
		Username:            record.Username,
		LastWorkoutDuration: entity.CentiToFloat(record.Duration()),
		CaloriesBurn:        entity.CentiToFloat(record.Calories()),
		Date:                entity.FormatDate(record.Date),
	})
}

// FetchCaloriesData handles the GET /fetchCaloriesData/:username endpoint
func (h *CaloriesHandler) FetchCaloriesData(c *gin.Context) {
	username := c.Param("username")

	history, err := h.caloriesUseCase.GetHistory(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, domainerr.ErrNoRecordsFound) || errors.Is(err, domainerr.ErrInvalidUsername) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:  domainerr.CodeNoRecordsFound,
				Error: "User not found",
			})
			return
		}

		h.logger.Error("Error fetching calories history", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, history)
}
