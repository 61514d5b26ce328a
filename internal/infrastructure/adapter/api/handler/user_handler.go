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

// UserHandler handles profile-related HTTP requests
type UserHandler struct {
	profileUseCase usecase.ProfileUseCase
	logger         coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(profileUseCase usecase.ProfileUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// GetUserInfo handles the GET /user_info/:username endpoint
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	username := c.Param("username")

	user, err := h.profileUseCase.GetUserInfo(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, domainerr.ErrUserNotFound) || errors.Is(err, domainerr.ErrInvalidUsername) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:  domainerr.CodeUserNotFound,
				Error: "User not found",
			})
			return
		}

		h.logger.Error("Error getting user info", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.UserInfoResponse{
		Name:        user.Name,
		Username:    user.Username,
		Email:       user.Email,
		Mobile:      user.Mobile,
		DateOfBirth: entity.FormatDate(user.DateOfBirth),
		Gender:      user.Gender,
		Height:      user.GetHeight(),
		Weight:      user.GetWeight(),
	})
}

// UpdateMetrics handles the POST /update endpoint
func (h *UserHandler) UpdateMetrics(c *gin.Context) {
	var req dto.UpdateMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.CodeMissingField,
			Error: "Missing required data",
		})
		return
	}

	// Zero counts as missing: the existing contract treats falsy height or
	// weight the same as an absent field
	if req.Username == "" ||
		req.Height == nil || *req.Height == 0 ||
		req.Weight == nil || *req.Weight == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.CodeMissingField,
			Error: "Missing required data",
		})
		return
	}

	err := h.profileUseCase.UpdateMetrics(c.Request.Context(), req.Username, *req.Height, *req.Weight)
	if err != nil {
		switch {
		case errors.Is(err, domainerr.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:  domainerr.CodeUserNotFound,
				Error: "User not found",
			})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(err),
				Error: err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(err),
				Error: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Height and weight updated successfully!",
	})
}
