package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInvalidCredentials.Error() != "invalid username or password" {
		t.Errorf("ErrInvalidCredentials has unexpected message: %s", ErrInvalidCredentials.Error())
	}
	if ErrPasswordMismatch.Error() != "old password did not matched" {
		t.Errorf("ErrPasswordMismatch has unexpected message: %s", ErrPasswordMismatch.Error())
	}
	if ErrInvalidDate.Error() != "invalid date format, expected YYYY-MM-DD" {
		t.Errorf("ErrInvalidDate has unexpected message: %s", ErrInvalidDate.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingField", ErrMissingField, 4001},
		{"InvalidUsername", ErrInvalidUsername, 4001},
		{"InvalidMeasurement", ErrInvalidMeasurement, 4002},
		{"NegativeMeasurement", ErrNegativeMeasurement, 4002},
		{"MeasurementOverflow", ErrMeasurementOverflow, 4002},
		{"InvalidDate", ErrInvalidDate, 4003},
		{"InvalidCredentials", ErrInvalidCredentials, 4010},
		{"PasswordMismatch", ErrPasswordMismatch, 4011},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"NoRecordsFound", ErrNoRecordsFound, 4041},
		{"DuplicateUser", ErrDuplicateUser, 4090},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"DatabaseConnection", ErrDatabaseConnection, 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidDate), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	fieldErr := &FieldError{Field: "height", Err: ErrInvalidMeasurement}

	// Test Error method
	expectedErrMsg := `field "height": invalid measurement format`
	if fieldErr.Error() != expectedErrMsg {
		t.Errorf("FieldError.Error() = %s, want %s", fieldErr.Error(), expectedErrMsg)
	}

	// Test Unwrap method
	if !errors.Is(fieldErr, ErrInvalidMeasurement) {
		t.Errorf("errors.Is(fieldErr, ErrInvalidMeasurement) = false, want true")
	}

	// ErrorCode sees through the wrapper
	if ErrorCode(fieldErr) != CodeInvalidMeasurement {
		t.Errorf("ErrorCode(fieldErr) = %d, want %d", ErrorCode(fieldErr), CodeInvalidMeasurement)
	}
}

func TestMissingField(t *testing.T) {
	err := MissingField("username")

	if !errors.Is(err, ErrMissingField) {
		t.Errorf("errors.Is(MissingField, ErrMissingField) = false, want true")
	}
	if ErrorCode(err) != CodeMissingField {
		t.Errorf("ErrorCode(MissingField) = %d, want %d", ErrorCode(err), CodeMissingField)
	}
}
