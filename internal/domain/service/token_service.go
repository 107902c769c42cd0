package service

import (
	"errors"
	"time"

	"jobboard/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeSession = "session"
	TokenTypeReset   = "reset"
)

var (
	// ErrTokenInvalid covers bad signatures, malformed tokens and tokens of the wrong type.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned for a well-signed token past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	AccountID uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      entity.Role        `json:"role"`
	Kind      entity.AccountKind `json:"kind"`
	Type      string             `json:"typ"`
	jwt.RegisteredClaims
}

// ResetClaims is the payload of a password reset token.
type ResetClaims struct {
	AccountID uuid.UUID          `json:"id"`
	Kind      entity.AccountKind `json:"kind"`
	Type      string             `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session and password reset tokens.
// The two token kinds are signed with different secrets and never validate as each other.
type TokenService interface {
	IssueSessionToken(account *entity.Account) (string, error)

	ValidateSessionToken(token string) (*SessionClaims, error)

	IssueResetToken(accountID uuid.UUID, kind entity.AccountKind) (string, error)

	VerifyResetToken(token string) (*ResetClaims, error)

	ResetTokenTTL() time.Duration
}
