// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode/utf8"

	"jobboard/config"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// maxPasswordBytes is the longest input bcrypt will hash.
	maxPasswordBytes = 72
	// passwordSpecialChars is the accepted special character set, space included.
	passwordSpecialChars = "#?!@$ %^&*-"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost factor.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, errors.Wrap(err, "malformed password hash")
}

// ValidatePasswordStrength applies the password policy shared by signup and reset.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var rule string
	switch {
	case utf8.RuneCountInString(password) < minPasswordLength:
		rule = "must be at least 8 characters long"
	case len(password) > maxPasswordBytes:
		rule = "must be at most 72 bytes long"
	case !h.hasUppercase(password):
		rule = "must contain at least one uppercase letter"
	case !h.hasLowercase(password):
		rule = "must contain at least one lowercase letter"
	case !h.hasNumbers(password):
		rule = "must contain at least one number"
	case !h.hasSpecialChars(password):
		rule = "must contain at least one special character from " + passwordSpecialChars
	default:
		return nil
	}

	return domainerrors.ErrPasswordStrength.WithDetails("password " + rule)
}

// Letter and digit classes are ASCII only.
func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' }) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.ContainsAny(s, passwordSpecialChars)
}
