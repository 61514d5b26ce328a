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

// Password-change status codes, reproduced literally from the existing
// wire contract. They predate this implementation and deviate from
// conventional HTTP semantics; the deployed mobile client matches on them.
const (
	StatusPasswordUpdated     = http.StatusCreated   // 201
	StatusOldPasswordMismatch = http.StatusAccepted  // 202
	StatusUserRowVanished     = 203                  // user disappeared between check and update
	StatusPasswordStoreError  = http.StatusNoContent // 204
)

// AuthHandler handles credential-related HTTP requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Login handles the POST /api/login_data endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.CodeMissingField,
			Error: "Username and password are required",
		})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.CodeMissingField,
			Error: "Username and password are required",
		})
		return
	}

	if err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, domainerr.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.AuthErrorResponse{
				Success: false,
				Error:   "Invalid username or password",
			})
			return
		}

		h.logger.Error("Login failed on store error", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
	})
}

// Signup handles the POST /api/signup_data endpoint
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.CodeMissingField,
			Error: "Invalid request body",
		})
		return
	}

	if req.Height == nil || req.Weight == nil {
		missing := "height"
		if req.Height != nil {
			missing = "weight"
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.CodeMissingField,
			Error: domainerr.MissingField(missing).Error(),
		})
		return
	}

	user, err := h.authUseCase.Signup(c.Request.Context(), usecase.SignupInput{
		Name:            req.Name,
		Username:        req.Username,
		Email:           req.Email,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
		Mobile:          req.MobileNumber,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
		Height:          *req.Height,
		Weight:          *req.Weight,
	})
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(err),
				Error: err.Error(),
			})
			return
		}

		// Duplicate usernames and store faults were unhandled server faults
		// in the original contract; a structured 500 is the closest analog.
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SignupResponse{
		Name:        user.Name,
		Username:    user.Username,
		Email:       user.Email,
		NewPassword: req.NewPassword,
		Password:    user.PasswordHash,
		Mobile:      user.Mobile,
		DateOfBirth: entity.FormatDate(user.DateOfBirth),
		Gender:      user.Gender,
		Height:      *req.Height,
		Weight:      *req.Weight,
	})
}

// UpdatePassword handles the POST /updatePassword endpoint
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.CodeMissingField,
			Error: "Invalid request body",
		})
		return
	}

	err := h.authUseCase.ChangePassword(c.Request.Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domainerr.ErrPasswordMismatch):
			c.JSON(StatusOldPasswordMismatch, dto.AuthErrorResponse{
				Success: false,
				Error:   "Old password did not matched",
			})
		case errors.Is(err, domainerr.ErrUserNotFound):
			c.JSON(StatusUserRowVanished, dto.ErrorResponse{
				Code:  domainerr.CodeUserNotFound,
				Error: "User not found",
			})
		default:
			// net/http drops the body on 204; the status code alone carries
			// the outcome for this client
			c.JSON(StatusPasswordStoreError, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(err),
				Error: err.Error(),
			})
		}
		return
	}

	c.JSON(StatusPasswordUpdated, dto.MessageResponse{
		Message: "Password Updated Successfully",
	})
}

// isValidationError reports whether the error maps to a 400 response
func isValidationError(err error) bool {
	return errors.Is(err, domainerr.ErrMissingField) ||
		errors.Is(err, domainerr.ErrInvalidMeasurement) ||
		errors.Is(err, domainerr.ErrNegativeMeasurement) ||
		errors.Is(err, domainerr.ErrMeasurementOverflow) ||
		errors.Is(err, domainerr.ErrInvalidDate) ||
		errors.Is(err, domainerr.ErrInvalidUsername)
}
