// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	listingRepo  repository.ListingRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ListingRepo  repository.ListingRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		listingRepo:  params.ListingRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account of input.Kind. The email conflict is reported before
// the password policy is checked.
func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput) (*entity.Account, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account kind")
	}

	email := entity.NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and password are required")
	}
	if input.Kind == entity.AccountKindBusiness && !entity.IsValidCNPJ(strings.TrimSpace(input.CNPJ)) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cnpj must match 00.000.000/0000-00")
	}

	account := buildAccount(input, name, email)

	srv.log(ctx).Info("Starting signup", slog.String("kind", input.Kind.String()), slog.String("email", email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, input.Kind, email)
		if err == nil {
			return errors.WithStack(domainerrors.ErrAccountAlreadyExists)
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to look up account by email")
		}

		if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
			return err
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return err
		}
		account.PasswordHash = hash

		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateAccount) {
				return errors.WithStack(domainerrors.ErrAccountAlreadyExists)
			}

			return errors.Wrap(err, "failed to create account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("kind", input.Kind.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Signup completed", slog.String("kind", input.Kind.String()), slog.Any("accountID", account.ID))

	return account.Sanitized(), nil
}

func buildAccount(input usecase.SignupInput, name, email string) *entity.Account {
	role := input.Kind.DefaultRole()
	if input.Role != "" && input.Role.IsValidFor(input.Kind) {
		role = input.Role
	}

	account := &entity.Account{
		ID:         uuid.New(),
		Kind:       input.Kind,
		Name:       name,
		Email:      email,
		Role:       role,
		Phone:      strings.TrimSpace(input.Phone),
		PictureURL: strings.TrimSpace(input.PictureURL),
		Active:     true,
	}

	switch input.Kind {
	case entity.AccountKindUser:
		if account.PictureURL == "" {
			account.PictureURL = entity.DefaultProfilePicture
		}
		account.UserProfile = &entity.UserProfile{Resume: input.Resume}
	case entity.AccountKindBusiness:
		account.BusinessProfile = &entity.BusinessProfile{
			CNPJ:        strings.TrimSpace(input.CNPJ),
			Description: input.Description,
			Address:     input.Address,
		}
	}

	return account
}

// Login checks the credentials and issues a session token.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account kind")
	}

	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Kind, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAccountNotFound)
		}

		return nil, errors.Wrap(err, "failed to look up account by email")
	}

	ok, err := srv.hasher.Check(input.Password, account.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is unusable", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	// Only a caller holding the password learns that the account was deactivated.
	if !account.Active {
		return nil, errors.WithStack(domainerrors.ErrAccountInactive)
	}

	token, err := srv.tokenService.IssueSessionToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("kind", input.Kind.String()), slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		Account: account.Sanitized(),
		Token:   token,
	}, nil
}

// GetProfile returns the account with its application history (users) or offers (businesses).
func (srv *accountService) GetProfile(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.findAccount(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	switch kind {
	case entity.AccountKindUser:
		history, err := srv.listingRepo.FindByCandidate(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load application history")
		}
		if account.UserProfile == nil {
			account.UserProfile = &entity.UserProfile{}
		}
		account.UserProfile.History = history
		account.UserProfile.HistoryListingIDs = listingIDs(history)
	case entity.AccountKindBusiness:
		offers, err := srv.listingRepo.FindByBusiness(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load offers")
		}
		if account.BusinessProfile == nil {
			account.BusinessProfile = &entity.BusinessProfile{}
		}
		account.BusinessProfile.Offers = offers
	}

	return account.Sanitized(), nil
}

// Deactivate soft-deletes the account.
func (srv *accountService) Deactivate(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	if err := srv.accountRepo.SetActive(ctx, kind, id, false); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to deactivate account")
	}

	srv.log(ctx).Info("Account deactivated", slog.String("kind", kind.String()), slog.Any("accountID", id))

	account, err := srv.findAccount(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	return account.Sanitized(), nil
}

func (srv *accountService) findAccount(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

func listingIDs(listings []*entity.Listing) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(listings))
	for _, listing := range listings {
		ids = append(ids, listing.ID)
	}

	return ids
}
