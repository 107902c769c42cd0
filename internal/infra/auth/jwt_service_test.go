package auth

import (
	"testing"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Session: "test_session_secret_key_very_long_for_testing",
			Reset:   "test_reset_secret_key_very_long_for_testing",
		},
	}
	cfg.Env.ServiceName = "jobboard-test"
	cfg.ApplyDefaults()

	return cfg
}

func newTestJWTService(t *testing.T) (*jwtService, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(newTestConfig(), clock.Now)
	require.NoError(t, err)

	return svc, clock
}

func newTestAccount() *entity.Account {
	return &entity.Account{
		ID:    uuid.New(),
		Kind:  entity.AccountKindBusiness,
		Name:  "Acme",
		Email: "hr@acme.test",
		Role:  entity.RoleBusiness,
	}
}

func TestJWTService_SessionTokenRoundTrip(t *testing.T) {
	svc, _ := newTestJWTService(t)
	account := newTestAccount()

	token, err := svc.IssueSessionToken(account)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, account.Name, claims.Name)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, account.Role, claims.Role)
	assert.Equal(t, account.Kind, claims.Kind)
	assert.Equal(t, service.TokenTypeSession, claims.Type)
}

func TestJWTService_SessionTokenExpiry(t *testing.T) {
	svc, clock := newTestJWTService(t)
	issuedAt := clock.now

	token, err := svc.IssueSessionToken(newTestAccount())
	require.NoError(t, err)

	clock.now = issuedAt.Add(11*time.Hour + 59*time.Minute)
	_, err = svc.ValidateSessionToken(token)
	assert.NoError(t, err)

	clock.now = issuedAt.Add(12*time.Hour + time.Minute)
	_, err = svc.ValidateSessionToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_ResetTokenExpiry(t *testing.T) {
	svc, clock := newTestJWTService(t)
	issuedAt := clock.now
	accountID := uuid.New()

	token, err := svc.IssueResetToken(accountID, entity.AccountKindUser)
	require.NoError(t, err)

	clock.now = issuedAt.Add(19 * time.Minute)
	claims, err := svc.VerifyResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, entity.AccountKindUser, claims.Kind)

	clock.now = issuedAt.Add(21 * time.Minute)
	_, err = svc.VerifyResetToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
	assert.False(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_TokensDoNotCrossValidate(t *testing.T) {
	svc, _ := newTestJWTService(t)
	account := newTestAccount()

	sessionToken, err := svc.IssueSessionToken(account)
	require.NoError(t, err)
	resetToken, err := svc.IssueResetToken(account.ID, account.Kind)
	require.NoError(t, err)

	_, err = svc.VerifyResetToken(sessionToken)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))

	_, err = svc.ValidateSessionToken(resetToken)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc, clock := newTestJWTService(t)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Reset = "another_reset_secret_for_testing"
	other, err := newJWTService(otherCfg, clock.Now)
	require.NoError(t, err)

	token, err := other.IssueResetToken(uuid.New(), entity.AccountKindUser)
	require.NoError(t, err)

	_, err = svc.VerifyResetToken(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, _ := newTestJWTService(t)

	_, err := svc.ValidateSessionToken("clearly-not-a-jwt-token-format")
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))

	_, err = svc.VerifyResetToken("")
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_ResetTokenTTL(t *testing.T) {
	svc, _ := newTestJWTService(t)

	assert.Equal(t, 20*time.Minute, svc.ResetTokenTTL())
}

func TestNewJWTService_SecretValidation(t *testing.T) {
	tests := []struct {
		name    string
		session string
		reset   string
		wantErr string
	}{
		{name: "empty secrets", wantErr: "jwt secrets must be provided"},
		{name: "missing reset", session: "session", wantErr: "jwt secrets must be provided"},
		{name: "shared secret", session: "same", reset: "same", wantErr: "must differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{SecretKey: config.SecretKeyConfig{Session: tt.session, Reset: tt.reset}}

			svc, err := NewJWTService(cfg)
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJWTService_ResetTokensAreUnique(t *testing.T) {
	svc, _ := newTestJWTService(t)
	accountID := uuid.New()

	first, err := svc.IssueResetToken(accountID, entity.AccountKindUser)
	require.NoError(t, err)
	second, err := svc.IssueResetToken(accountID, entity.AccountKindUser)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
