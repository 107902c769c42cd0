package auth

import (
	"strings"
	"testing"

	"jobboard/config"
	domainerrors "jobboard/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "Abc#1234"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	ok, err := hasher.Check(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check("Abc#12345", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Check("", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	ok, err := hasher.Check("Abc#1234", "invalid_hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_DefaultCostFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("Abc#1234")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("Abc#1234")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	validPasswords := []string{
		"Abc#1234",
		"StrongPass123!",
		"With Space1a",
		"Dash-Pass9",
		"Pässphräse123!",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "expected %q to be accepted", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"", "at least 8 characters"},
		{"Ab#1", "at least 8 characters"},
		{"abc12345", "uppercase"},
		{"ABC#1234", "lowercase"},
		{"Abcdefg#", "number"},
		{"Abcd1234", "special character"},
		{"Abcd1234(", "special character"},
		{"Abc#1234" + strings.Repeat("x", 65), "at most 72 bytes"},
		{"abc#١٢٣٤X", "number"},
		{"Ébc#1234", "uppercase"},
		{"ÄBC#1234é", "lowercase"},
	}
	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tc.expectedErr)
		})
	}
}

func TestBcryptHasher_LongestAcceptedPasswordHashes(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "Abc#1234" + strings.Repeat("x", 64)
	require.Len(t, password, 72)
	require.NoError(t, hasher.ValidatePasswordStrength(password))

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	ok, err := hasher.Check(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))

	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))

	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))
	assert.False(t, hasher.hasNumbers("Password١٢"))
	assert.False(t, hasher.hasUppercase("Été"))
	assert.False(t, hasher.hasLowercase("éè"))

	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.True(t, hasher.hasSpecialChars("Pass word"))
	assert.False(t, hasher.hasSpecialChars("Password"))
	assert.False(t, hasher.hasSpecialChars("Password_"))
}
