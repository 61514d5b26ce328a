package auth

import (
	coreport "github.com/fittrack-app/fittrack-server/internal/domain/port/core"
	"github.com/fittrack-app/fittrack-server/internal/domain/port/persistence"
	"github.com/fittrack-app/fittrack-server/internal/domain/port/usecase"
)

// Service implements the credential-related business logic
type Service struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service instance
func NewService(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
