package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingField       = 4001
	CodeInvalidMeasurement = 4002
	CodeInvalidDate        = 4003
	CodeInvalidCredentials = 4010
	CodePasswordMismatch   = 4011
	CodeUserNotFound       = 4040
	CodeNoRecordsFound     = 4041
	CodeDuplicateUsername  = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrMissingField is returned when a required request field is absent or empty
	ErrMissingField = errors.New("required field is missing")

	// ErrInvalidMeasurement is returned when a numeric measurement has a bad format
	ErrInvalidMeasurement = errors.New("invalid measurement format")

	// ErrNegativeMeasurement is returned when a measurement is negative
	ErrNegativeMeasurement = errors.New("measurement cannot be negative")

	// ErrMeasurementOverflow is returned when a measurement exceeds the storable range
	ErrMeasurementOverflow = errors.New("measurement is too large")

	// ErrInvalidDate is returned when a date string cannot be parsed
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidUsername is returned when the username is empty
	ErrInvalidUsername = errors.New("username cannot be empty")

	// ErrInvalidCredentials is returned when login verification fails
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordMismatch is returned when the old password doesn't match on a password change
	ErrPasswordMismatch = errors.New("old password did not matched")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNoRecordsFound is returned when a username has no calorie records
	ErrNoRecordsFound = errors.New("no calorie records found")

	// ErrDuplicateUser is returned when the username is already taken
	ErrDuplicateUser = errors.New("username already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidUsername):
		return CodeMissingField
	case errors.Is(err, ErrInvalidMeasurement),
		errors.Is(err, ErrNegativeMeasurement),
		errors.Is(err, ErrMeasurementOverflow):
		return CodeInvalidMeasurement
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrPasswordMismatch):
		return CodePasswordMismatch
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUsername
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNoRecordsFound):
		return CodeNoRecordsFound
	default:
		return CodeInternalServer
	}
}

// FieldError represents a validation failure on a specific request field
type FieldError struct {
	Field string
	Err   error
}

// Error implements the error interface for FieldError
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *FieldError) Unwrap() error {
	return e.Err
}

// MissingField builds a FieldError wrapping ErrMissingField
func MissingField(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}
