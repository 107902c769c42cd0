package service

import (
	"time"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new instance of MockTokenService and asserts its expectations on cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// IssueSessionToken provides a mock function with given fields: account
func (m *MockTokenService) IssueSessionToken(account *entity.Account) (string, error) {
	ret := m.Called(account)

	return ret.String(0), ret.Error(1)
}

// ValidateSessionToken provides a mock function with given fields: token
func (m *MockTokenService) ValidateSessionToken(token string) (*service.SessionClaims, error) {
	ret := m.Called(token)

	var claims *service.SessionClaims
	if rf, ok := ret.Get(0).(*service.SessionClaims); ok {
		claims = rf
	}

	return claims, ret.Error(1)
}

// IssueResetToken provides a mock function with given fields: accountID, kind
func (m *MockTokenService) IssueResetToken(accountID uuid.UUID, kind entity.AccountKind) (string, error) {
	ret := m.Called(accountID, kind)

	return ret.String(0), ret.Error(1)
}

// VerifyResetToken provides a mock function with given fields: token
func (m *MockTokenService) VerifyResetToken(token string) (*service.ResetClaims, error) {
	ret := m.Called(token)

	var claims *service.ResetClaims
	if rf, ok := ret.Get(0).(*service.ResetClaims); ok {
		claims = rf
	}

	return claims, ret.Error(1)
}

// ResetTokenTTL provides a mock function with no fields
func (m *MockTokenService) ResetTokenTTL() time.Duration {
	ret := m.Called()

	if d, ok := ret.Get(0).(time.Duration); ok {
		return d
	}

	return 0
}
