package crypto

import (
	"github.com/fittrack-app/fittrack-server/internal/domain/port/core"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements the PasswordHasher interface using bcrypt.
// Each Hash call draws a fresh salt, so equal inputs produce distinct
// digests.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default bcrypt cost
func NewBcryptHasher() core.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost, mainly to
// keep test suites fast
func NewBcryptHasherWithCost(cost int) core.PasswordHasher {
	return &BcryptHasher{cost: cost}
}

// Hash produces a salted, irreversible digest of the plaintext
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the salted hash. Malformed
// hashes verify as false rather than erroring.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
