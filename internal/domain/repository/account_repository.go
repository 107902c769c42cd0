// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches a lookup or a conditional update.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when an account with the same kind and email exists,
	// or a business with the same CNPJ.
	ErrDuplicateAccount = errors.New("account already exists")
)

// UpdatePasswordParams describes a password replacement.
type UpdatePasswordParams struct {
	ID           uuid.UUID
	PasswordHash string
	// ExpectedResetToken, when non-empty, makes the update conditional on the stored
	// reset token still being this value.
	ExpectedResetToken string
}

// AccountRepository persists user and business accounts. Emails are expected normalized.
type AccountRepository interface {
	// Create persists the account and its kind-specific profile.
	Create(ctx context.Context, account *entity.Account) error

	FindByID(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error)

	FindByEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error)

	// FindByResetToken matches the literal stored token.
	FindByResetToken(ctx context.Context, kind entity.AccountKind, token string) (*entity.Account, error)

	// FindByIDs returns the accounts of the kind among ids, silently skipping unknown ones.
	FindByIDs(ctx context.Context, kind entity.AccountKind, ids []uuid.UUID) ([]*entity.Account, error)

	// SetResetToken overwrites the stored reset token in a single statement.
	SetResetToken(ctx context.Context, id uuid.UUID, token string) error

	// UpdatePassword replaces the hash and clears the reset token in a single statement.
	UpdatePassword(ctx context.Context, params UpdatePasswordParams) error

	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, kind entity.AccountKind, id uuid.UUID, active bool) error
}
