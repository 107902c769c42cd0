package impl

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/url"
	"strings"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"go.uber.org/fx"
)

var resetMailTemplate = template.Must(template.New("reset").Parse(
	`<p>Hello {{.Name}},</p>` +
		`<p>We received a request to reset your password. The link below is valid for {{.Validity}}.</p>` +
		`<p><a href="{{.Link}}">Reset my password</a></p>` +
		`<p>If you did not ask for a new password you can ignore this email.</p>`,
))

type resetMailData struct {
	Name     string
	Link     string
	Validity string
}

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailSender   service.MailSender
	linkBaseURL  string
	subject      string
	logger       *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailSender   service.MailSender
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	srv := &passwordResetService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailSender:   params.MailSender,
		subject:      "Password reset",
		logger:       params.Logger,
	}
	if cfg := params.Config.PasswordReset; cfg != nil {
		srv.linkBaseURL = strings.TrimRight(cfg.LinkBaseURL, "/")
		if cfg.Subject != "" {
			srv.subject = cfg.Subject
		}
	}

	return srv
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset issues a reset token, stores it on the account (replacing any earlier one)
// and mails the link. A mail failure leaves the stored token in place.
func (srv *passwordResetService) RequestReset(ctx context.Context, kind entity.AccountKind, email string) error {
	if !kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown account kind")
	}

	email = entity.NormalizeEmail(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, kind, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.WithStack(domainerrors.ErrResetAccountNotFound)
		}

		return errors.Wrap(err, "failed to look up account by email")
	}

	token, err := srv.tokenService.IssueResetToken(account.ID, kind)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	if err := srv.accountRepo.SetResetToken(ctx, account.ID, token); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	mail, err := srv.buildResetMail(account, token)
	if err != nil {
		return err
	}

	if err := srv.mailSender.Send(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to send password reset email",
			slog.String("kind", kind.String()),
			slog.Any("accountID", account.ID),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrMailDelivery, err.Error())
	}

	srv.log(ctx).Info("Password reset requested", slog.String("kind", kind.String()), slog.Any("accountID", account.ID))

	return nil
}

// ResetLink builds the frontend link carrying the token as a single path segment.
func ResetLink(baseURL string, kind entity.AccountKind, token string) string {
	return baseURL + "/" + kind.String() + "/reset-password/" + url.PathEscape(token)
}

func (srv *passwordResetService) buildResetMail(account *entity.Account, token string) (service.Email, error) {
	link := ResetLink(srv.linkBaseURL, account.Kind, token)
	validity := util.FormatDuration(srv.tokenService.ResetTokenTTL())

	var body bytes.Buffer
	if err := resetMailTemplate.Execute(&body, resetMailData{
		Name:     account.Name,
		Link:     link,
		Validity: validity,
	}); err != nil {
		return service.Email{}, errors.Wrap(err, "failed to render reset email")
	}

	return service.Email{
		To:       []string{account.Email},
		Subject:  srv.subject,
		Body:     "Reset your password within " + validity + ": " + link,
		HTMLBody: body.String(),
	}, nil
}

// RedeemReset sets a new password if token is the current, unexpired reset token of an account.
// The token is cleared by the same statement that stores the new hash, so it works once.
func (srv *passwordResetService) RedeemReset(ctx context.Context, kind entity.AccountKind, token, newPassword string) error {
	account, err := srv.resolveToken(ctx, kind, token)
	if err != nil {
		return err
	}

	if err := srv.hasher.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	err = srv.accountRepo.UpdatePassword(ctx, repository.UpdatePasswordParams{
		ID:                 account.ID,
		PasswordHash:       hash,
		ExpectedResetToken: token,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Another redemption or a newer request replaced the token first.
			return errors.WithStack(domainerrors.ErrResetTokenInvalid)
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("kind", kind.String()), slog.Any("accountID", account.ID))

	return nil
}

// CheckTokenValid reports whether token is still the stored reset token of its account.
// Bad signatures and expiry are errors; a well-formed token that was used or superseded yields false.
func (srv *passwordResetService) CheckTokenValid(ctx context.Context, kind entity.AccountKind, token string) (bool, error) {
	_, err := srv.resolveToken(ctx, kind, token)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, errTokenSuperseded) {
		return false, nil
	}

	return false, err
}

var errTokenSuperseded = errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token is no longer current")

// resolveToken verifies the token and returns the account it is currently stored on.
func (srv *passwordResetService) resolveToken(ctx context.Context, kind entity.AccountKind, token string) (*entity.Account, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account kind")
	}
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}

	claims, err := srv.tokenService.VerifyResetToken(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.WithStack(domainerrors.ErrResetTokenExpired)
		}

		return nil, errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}
	if claims.Kind != kind {
		return nil, errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}

	account, err := srv.accountRepo.FindByResetToken(ctx, kind, token)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errTokenSuperseded
		}

		return nil, errors.Wrap(err, "failed to look up reset token")
	}
	if account.ID != claims.AccountID {
		return nil, errTokenSuperseded
	}

	return account, nil
}
