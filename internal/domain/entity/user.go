package entity

import (
	"time"

	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
	coreport "github.com/fittrack-app/fittrack-server/internal/domain/port/core"
)

// User represents a registered account with its profile and biometrics
type User struct {
	ID           uint64    // Unique identifier assigned by the store
	Name         string    // Display name
	Username     string    // Unique natural key, immutable after creation
	Email        string    // Contact email
	PasswordHash string    // Salted one-way hash, never plaintext
	Mobile       string    // Mobile number
	DateOfBirth  time.Time // Date of birth (date precision)
	Gender       string    // Free-form gender string
	heightCenti  int64     // Height in centi-units (private to protect the 2-decimal invariant)
	weightCenti  int64     // Weight in centi-units
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user with validated biometrics.
// Height and weight are given in centi-units (see measurement.go).
func NewUser(
	name, username, email, passwordHash, mobile string,
	dateOfBirth time.Time,
	gender string,
	heightCenti, weightCenti int64,
	timeProvider coreport.TimeProvider,
) (*User, error) {
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}
	if heightCenti < 0 || weightCenti < 0 {
		return nil, errs.ErrNegativeMeasurement
	}
	if heightCenti > MaxCentiValue || weightCenti > MaxCentiValue {
		return nil, errs.ErrMeasurementOverflow
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Mobile:       mobile,
		DateOfBirth:  dateOfBirth,
		Gender:       gender,
		heightCenti:  heightCenti,
		weightCenti:  weightCenti,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Height returns the height in centi-units (for internal use)
func (u *User) Height() int64 {
	return u.heightCenti
}

// Weight returns the weight in centi-units (for internal use)
func (u *User) Weight() int64 {
	return u.weightCenti
}

// GetHeight returns the height as a string with 2 decimal places
func (u *User) GetHeight() string {
	return CentiToString(u.heightCenti)
}

// GetWeight returns the weight as a string with 2 decimal places
func (u *User) GetWeight() string {
	return CentiToString(u.weightCenti)
}
