package impl

import (
	"context"
	"testing"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accounts     *fakeAccountRepository
	listings     *fakeListingRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	accounts := newFakeAccountRepository()
	listings := newFakeListingRepository(accounts)
	hasher := newTestHasher()
	tokenService := mustTokenService(newTestConfig())

	svc := NewAccountService(AccountServiceParams{
		TxManager:    &fakeTransactionManager{accounts: accounts, listings: listings},
		AccountRepo:  accounts,
		ListingRepo:  listings,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      svc,
		accounts:     accounts,
		listings:     listings,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func userSignup(email, password string) usecase.SignupInput {
	return usecase.SignupInput{
		Kind:     entity.AccountKindUser,
		Name:     "Ana Souza",
		Email:    email,
		Password: password,
		Phone:    "+55 11 99999-0000",
		Resume:   "Backend developer",
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)

	account, err := fx.service.Signup(context.Background(), userSignup("  Ana@Example.COM ", "Abc#1234"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "ana@example.com", account.Email)
	assert.Equal(t, entity.RoleUser, account.Role)
	assert.Equal(t, entity.DefaultProfilePicture, account.PictureURL)
	assert.True(t, account.Active)
	assert.Empty(t, account.PasswordHash, "hash must never leave the use case")
	require.NotNil(t, account.UserProfile)
	assert.Equal(t, "Backend developer", account.UserProfile.Resume)

	stored := fx.accounts.stored(account.ID)
	assert.NotEqual(t, "Abc#1234", stored.PasswordHash)
	ok, err := fx.hasher.Check("Abc#1234", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccountService_Signup_Business(t *testing.T) {
	fx := createTestAccountService(t)

	account, err := fx.service.Signup(context.Background(), usecase.SignupInput{
		Kind:        entity.AccountKindBusiness,
		Name:        "Acme",
		Email:       "hr@acme.test",
		Password:    "Abc#1234",
		CNPJ:        "12.345.678/0001-90",
		Description: "Widgets",
		Address:     entity.Address{City: "Recife", State: "PE"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleBusiness, account.Role)
	require.NotNil(t, account.BusinessProfile)
	assert.Equal(t, "12.345.678/0001-90", account.BusinessProfile.CNPJ)
	assert.Equal(t, "Recife", account.BusinessProfile.Address.City)
	assert.Nil(t, account.UserProfile)
}

func TestAccountService_Signup_BusinessCNPJ(t *testing.T) {
	businessSignup := func(email, cnpj string) usecase.SignupInput {
		input := userSignup(email, "Abc#1234")
		input.Kind = entity.AccountKindBusiness
		input.CNPJ = cnpj

		return input
	}

	t.Run("missing", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.Signup(context.Background(), businessSignup("hr@acme.test", ""))
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("malformed", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.Signup(context.Background(), businessSignup("hr@acme.test", "12345678000190"))
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("already registered", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		_, err := fx.service.Signup(ctx, businessSignup("hr@acme.test", "12.345.678/0001-90"))
		require.NoError(t, err)

		_, err = fx.service.Signup(ctx, businessSignup("jobs@other.test", "12.345.678/0001-90"))
		assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
	})

	t.Run("ignored for users", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.Signup(context.Background(), userSignup("ana@example.com", "Abc#1234"))
		assert.NoError(t, err)
	})
}

func TestAccountService_Signup_Role(t *testing.T) {
	tests := []struct {
		name string
		role entity.Role
		want entity.Role
	}{
		{name: "admin accepted", role: entity.RoleAdmin, want: entity.RoleAdmin},
		{name: "business role ignored for users", role: entity.RoleBusiness, want: entity.RoleUser},
		{name: "unknown role ignored", role: "ROOT", want: entity.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			input := userSignup("role@example.com", "Abc#1234")
			input.Role = tt.role

			account, err := fx.service.Signup(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, account.Role)
		})
	}
}

func TestAccountService_Signup_ConflictReportedBeforePasswordPolicy(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.Signup(ctx, userSignup("ana@example.com", "Abc#1234"))
	require.NoError(t, err)

	_, err = fx.service.Signup(ctx, userSignup("ANA@example.com", "weak"))
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_Signup_SameEmailAcrossKinds(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.Signup(ctx, userSignup("shared@example.com", "Abc#1234"))
	require.NoError(t, err)

	business := userSignup("shared@example.com", "Abc#1234")
	business.Kind = entity.AccountKindBusiness
	business.CNPJ = "12.345.678/0001-90"
	_, err = fx.service.Signup(ctx, business)
	assert.NoError(t, err)
}

func TestAccountService_Signup_PasswordPolicy(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.Signup(ctx, userSignup("weak@example.com", "abc12345"))
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	_, err = fx.service.Signup(ctx, userSignup("weak@example.com", "Abc#1234"))
	assert.NoError(t, err, "the rejected attempt must not have stored anything")
}

func TestAccountService_Signup_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Signup(context.Background(), userSignup("", "Abc#1234"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Login(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	created, err := fx.service.Signup(ctx, userSignup("ana@example.com", "Abc#1234"))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		output, err := fx.service.Login(ctx, usecase.LoginInput{
			Kind:     entity.AccountKindUser,
			Email:    "Ana@Example.com",
			Password: "Abc#1234",
		})
		require.NoError(t, err)

		assert.Empty(t, output.Account.PasswordHash)
		claims, err := fx.tokenService.ValidateSessionToken(output.Token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, claims.AccountID)
		assert.Equal(t, entity.AccountKindUser, claims.Kind)
		assert.Equal(t, entity.RoleUser, claims.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := fx.service.Login(ctx, usecase.LoginInput{Kind: entity.AccountKindUser, Email: "nobody@example.com", Password: "Abc#1234"})
		assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	})

	t.Run("wrong kind", func(t *testing.T) {
		_, err := fx.service.Login(ctx, usecase.LoginInput{Kind: entity.AccountKindBusiness, Email: "ana@example.com", Password: "Abc#1234"})
		assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := fx.service.Login(ctx, usecase.LoginInput{Kind: entity.AccountKindUser, Email: "ana@example.com", Password: "Abc#12345"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAccountService_Deactivate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	created, err := fx.service.Signup(ctx, userSignup("ana@example.com", "Abc#1234"))
	require.NoError(t, err)

	account, err := fx.service.Deactivate(ctx, entity.AccountKindUser, created.ID)
	require.NoError(t, err)
	assert.False(t, account.Active)
	assert.Empty(t, account.PasswordHash)

	_, err = fx.service.Login(ctx, usecase.LoginInput{Kind: entity.AccountKindUser, Email: "ana@example.com", Password: "Wrong#123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials), "a wrong password must not reveal the deactivation")

	_, err = fx.service.Login(ctx, usecase.LoginInput{Kind: entity.AccountKindUser, Email: "ana@example.com", Password: "Abc#1234"})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))

	_, err = fx.service.Deactivate(ctx, entity.AccountKindBusiness, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestAccountService_GetProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user, err := fx.service.Signup(ctx, userSignup("ana@example.com", "Abc#1234"))
	require.NoError(t, err)

	businessInput := userSignup("hr@acme.test", "Abc#1234")
	businessInput.Kind = entity.AccountKindBusiness
	businessInput.CNPJ = "12.345.678/0001-90"
	business, err := fx.service.Signup(ctx, businessInput)
	require.NoError(t, err)

	listing := &entity.Listing{ID: uuid.New(), Title: "Go developer", BusinessID: business.ID, Status: entity.ListingStatusOpen}
	require.NoError(t, fx.listings.Create(ctx, listing))
	require.NoError(t, fx.listings.AddCandidate(ctx, listing.ID, user.ID))

	userProfile, err := fx.service.GetProfile(ctx, entity.AccountKindUser, user.ID)
	require.NoError(t, err)
	assert.Empty(t, userProfile.PasswordHash)
	require.NotNil(t, userProfile.UserProfile)
	assert.Equal(t, []uuid.UUID{listing.ID}, userProfile.UserProfile.HistoryListingIDs)
	require.Len(t, userProfile.UserProfile.History, 1)
	assert.Equal(t, "Go developer", userProfile.UserProfile.History[0].Title)

	businessProfile, err := fx.service.GetProfile(ctx, entity.AccountKindBusiness, business.ID)
	require.NoError(t, err)
	require.NotNil(t, businessProfile.BusinessProfile)
	require.Len(t, businessProfile.BusinessProfile.Offers, 1)
	assert.Equal(t, listing.ID, businessProfile.BusinessProfile.Offers[0].ID)

	_, err = fx.service.GetProfile(ctx, entity.AccountKindUser, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}
