// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes and verifies passwords and owns the password policy.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	// A mismatch yields (false, nil); an error is returned only for a malformed hash.
	Check(password, hash string) (bool, error)

	// ValidatePasswordStrength returns an error naming the first unmet policy rule.
	ValidatePasswordStrength(password string) error
}
