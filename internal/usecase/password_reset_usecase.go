package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// PasswordResetUsecase drives the emailed, single-use password reset flow.
type PasswordResetUsecase interface {
	// RequestReset stores a fresh reset token for the account and mails the reset link.
	RequestReset(ctx context.Context, kind entity.AccountKind, email string) error
	// RedeemReset replaces the password if token is the account's current reset token.
	RedeemReset(ctx context.Context, kind entity.AccountKind, token, newPassword string) error
	// CheckTokenValid reports whether token could still be redeemed, without consuming it.
	CheckTokenValid(ctx context.Context, kind entity.AccountKind, token string) (bool, error)
}
