package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPasswordResetUsecase is a mock implementation of usecase.PasswordResetUsecase.
type MockPasswordResetUsecase struct {
	mock.Mock
}

// NewMockPasswordResetUsecase creates a new instance of MockPasswordResetUsecase and asserts its expectations on cleanup.
func NewMockPasswordResetUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordResetUsecase {
	m := &MockPasswordResetUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// RequestReset provides a mock function with given fields: ctx, kind, email
func (m *MockPasswordResetUsecase) RequestReset(ctx context.Context, kind entity.AccountKind, email string) error {
	ret := m.Called(ctx, kind, email)

	return ret.Error(0)
}

// RedeemReset provides a mock function with given fields: ctx, kind, token, newPassword
func (m *MockPasswordResetUsecase) RedeemReset(ctx context.Context, kind entity.AccountKind, token, newPassword string) error {
	ret := m.Called(ctx, kind, token, newPassword)

	return ret.Error(0)
}

// CheckTokenValid provides a mock function with given fields: ctx, kind, token
func (m *MockPasswordResetUsecase) CheckTokenValid(ctx context.Context, kind entity.AccountKind, token string) (bool, error) {
	ret := m.Called(ctx, kind, token)

	return ret.Bool(0), ret.Error(1)
}
