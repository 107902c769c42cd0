package impl

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	mockSvc "jobboard/internal/mocks/service"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type passwordResetFixtures struct {
	service  usecase.PasswordResetUsecase
	accounts *fakeAccountRepository
	hasher   service.PasswordHasher
	mailer   *mockSvc.MockMailSender
	account  *entity.Account
}

func createTestPasswordResetService(t *testing.T, tokenService service.TokenService) passwordResetFixtures {
	t.Helper()

	cfg := newTestConfig()
	accounts := newFakeAccountRepository()
	hasher := newTestHasher()
	mailer := mockSvc.NewMockMailSender(t)
	if tokenService == nil {
		tokenService = mustTokenService(cfg)
	}

	hash, err := hasher.Hash("Old#Pass1")
	require.NoError(t, err)
	account := &entity.Account{
		ID:           uuid.New(),
		Kind:         entity.AccountKindUser,
		Name:         "Ana",
		Email:        "ana@example.com",
		Role:         entity.RoleUser,
		PasswordHash: hash,
		Active:       true,
	}
	require.NoError(t, accounts.Create(context.Background(), account))

	svc := NewPasswordResetService(PasswordResetServiceParams{
		AccountRepo:  accounts,
		Hasher:       hasher,
		TokenService: tokenService,
		MailSender:   mailer,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return passwordResetFixtures{
		service:  svc,
		accounts: accounts,
		hasher:   hasher,
		mailer:   mailer,
		account:  account,
	}
}

// expectMail captures every sent email.
func (fx passwordResetFixtures) expectMail(sent *[]service.Email) {
	fx.mailer.On("Send", mock.Anything, mock.AnythingOfType("service.Email")).
		Run(func(args mock.Arguments) {
			*sent = append(*sent, args.Get(1).(service.Email))
		}).
		Return(nil)
}

// tokenFromMail extracts the token from the reset link in the plain text body.
func tokenFromMail(t *testing.T, mail service.Email) string {
	t.Helper()

	const marker = "/user/reset-password/"
	idx := strings.Index(mail.Body, marker)
	require.GreaterOrEqual(t, idx, 0, "reset link missing from %q", mail.Body)

	token, err := url.PathUnescape(mail.Body[idx+len(marker):])
	require.NoError(t, err)

	return token
}

func TestPasswordResetService_RequestReset_SendsLink(t *testing.T) {
	fx := createTestPasswordResetService(t, nil)
	var sent []service.Email
	fx.expectMail(&sent)

	require.NoError(t, fx.service.RequestReset(context.Background(), entity.AccountKindUser, " ANA@example.com"))

	require.Len(t, sent, 1)
	assert.Equal(t, []string{"ana@example.com"}, sent[0].To)
	assert.Equal(t, "Password reset", sent[0].Subject)
	assert.Contains(t, sent[0].HTMLBody, "https://jobs.example.test/user/reset-password/")
	assert.Contains(t, sent[0].HTMLBody, "20 minutes")

	token := tokenFromMail(t, sent[0])
	assert.Equal(t, token, fx.accounts.stored(fx.account.ID).ResetToken)
}

func TestPasswordResetService_RequestReset_UnknownEmail(t *testing.T) {
	fx := createTestPasswordResetService(t, nil)

	err := fx.service.RequestReset(context.Background(), entity.AccountKindUser, "nobody@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrResetAccountNotFound))

	err = fx.service.RequestReset(context.Background(), entity.AccountKindBusiness, "ana@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrResetAccountNotFound))

	fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	assert.Empty(t, fx.accounts.stored(fx.account.ID).ResetToken)
}

func TestPasswordResetService_RequestReset_MailFailureKeepsToken(t *testing.T) {
	fx := createTestPasswordResetService(t, nil)
	fx.mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp: connection refused"))

	err := fx.service.RequestReset(context.Background(), entity.AccountKindUser, "ana@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrMailDelivery))

	assert.NotEmpty(t, fx.accounts.stored(fx.account.ID).ResetToken)
}

func TestPasswordResetService_RedeemReset_SingleUse(t *testing.T) {
	fx := createTestPasswordResetService(t, nil)
	ctx := context.Background()
	var sent []service.Email
	fx.expectMail(&sent)

	require.NoError(t, fx.service.RequestReset(ctx, entity.AccountKindUser, "ana@example.com"))
	token := tokenFromMail(t, sent[0])

	valid, err := fx.service.CheckTokenValid(ctx, entity.AccountKindUser, token)
	require.NoError(t, err)
	assert.True(t, valid)

	require.NoError(t, fx.service.RedeemReset(ctx, entity.AccountKindUser, token, "New#Pass1"))

	stored := fx.accounts.stored(fx.account.ID)
	assert.Empty(t, stored.ResetToken)
	ok, err := fx.hasher.Check("New#Pass1", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	err = fx.service.RedeemReset(ctx, entity.AccountKindUser, token, "Other#Pass1")
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))

	valid, err = fx.service.CheckTokenValid(ctx, entity.AccountKindUser, token)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestPasswordResetService_NewerRequestSupersedesOlderToken(t *testing.T) {
	fx := createTestPasswordResetService(t, nil)
	ctx := context.Background()
	var sent []service.Email
	fx.expectMail(&sent)

	require.NoError(t, fx.service.RequestReset(ctx, entity.AccountKindUser, "ana@example.com"))
	require.NoError(t, fx.service.RequestReset(ctx, entity.AccountKindUser, "ana@example.com"))
	require.Len(t, sent, 2)

	first := tokenFromMail(t, sent[0])
	second := tokenFromMail(t, sent[1])
	require.NotEqual(t, first, second)

	valid, err := fx.service.CheckTokenValid(ctx, entity.AccountKindUser, first)
	require.NoError(t, err)
	assert.False(t, valid)

	err = fx.service.RedeemReset(ctx, entity.AccountKindUser, first, "New#Pass1")
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))

	assert.NoError(t, fx.service.RedeemReset(ctx, entity.AccountKindUser, second, "New#Pass1"))
}

func TestPasswordResetService_RedeemReset_WeakPasswordKeepsToken(t *testing.T) {
	fx := createTestPasswordResetService(t, nil)
	ctx := context.Background()
	var sent []service.Email
	fx.expectMail(&sent)

	require.NoError(t, fx.service.RequestReset(ctx, entity.AccountKindUser, "ana@example.com"))
	token := tokenFromMail(t, sent[0])

	err := fx.service.RedeemReset(ctx, entity.AccountKindUser, token, "abc12345")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	valid, err := fx.service.CheckTokenValid(ctx, entity.AccountKindUser, token)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestPasswordResetService_RedeemReset_WrongKind(t *testing.T) {
	fx := createTestPasswordResetService(t, nil)
	ctx := context.Background()
	var sent []service.Email
	fx.expectMail(&sent)

	require.NoError(t, fx.service.RequestReset(ctx, entity.AccountKindUser, "ana@example.com"))
	token := tokenFromMail(t, sent[0])

	err := fx.service.RedeemReset(ctx, entity.AccountKindBusiness, token, "New#Pass1")
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestPasswordResetService_TokenVerificationErrors(t *testing.T) {
	tests := []struct {
		name    string
		verify  error
		wantErr error
	}{
		{name: "expired", verify: service.ErrTokenExpired, wantErr: domainerrors.ErrResetTokenExpired},
		{name: "bad signature", verify: service.ErrTokenInvalid, wantErr: domainerrors.ErrResetTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenService := mockSvc.NewMockTokenService(t)
			tokenService.On("VerifyResetToken", "some-token").Return(nil, errors.Wrap(tt.verify, "parse"))
			fx := createTestPasswordResetService(t, tokenService)
			ctx := context.Background()

			err := fx.service.RedeemReset(ctx, entity.AccountKindUser, "some-token", "New#Pass1")
			assert.True(t, errors.Is(err, tt.wantErr))

			valid, err := fx.service.CheckTokenValid(ctx, entity.AccountKindUser, "some-token")
			assert.False(t, valid)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestResetLink_EscapesToken(t *testing.T) {
	link := ResetLink("https://jobs.example.test", entity.AccountKindBusiness, "a/b c")

	assert.Equal(t, "https://jobs.example.test/business/reset-password/a%2Fb%20c", link)
}
