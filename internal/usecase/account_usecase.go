// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput carries the signup form of either account kind.
// Resume only applies to users; CNPJ, Description and Address only to businesses.
type SignupInput struct {
	Kind       entity.AccountKind
	Name       string
	Email      string
	Password   string
	Phone      string
	PictureURL string
	Role       entity.Role

	Resume string

	CNPJ        string
	Description string
	Address     entity.Address
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Kind     entity.AccountKind
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token and the sanitized account.
type LoginOutput struct {
	Account *entity.Account
	Token   string
}

// AccountUsecase defines signup, login and profile operations for both account kinds.
// Every returned account has its credential material cleared.
type AccountUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*entity.Account, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// GetProfile returns the account with its application history or offers populated.
	GetProfile(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error)
	// Deactivate soft-deletes the account; it can no longer log in.
	Deactivate(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error)
}
