package core

// PasswordHasher abstracts the salted one-way password digest used for
// credentials. Hash is non-deterministic (fresh salt per call); Verify
// reports false for a malformed hash rather than returning an error.
type PasswordHasher interface {
	// Hash produces a salted, irreversible digest of the plaintext
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the salted hash
	Verify(plaintext, hash string) bool
}
