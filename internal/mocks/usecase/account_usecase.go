// Package usecase provides testify mocks of the use case interfaces.
package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a mock implementation of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

// NewMockAccountUsecase creates a new instance of MockAccountUsecase and asserts its expectations on cleanup.
func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Signup provides a mock function with given fields: ctx, input
func (m *MockAccountUsecase) Signup(ctx context.Context, input usecase.SignupInput) (*entity.Account, error) {
	ret := m.Called(ctx, input)

	return accountAt(ret, 0), ret.Error(1)
}

// Login provides a mock function with given fields: ctx, input
func (m *MockAccountUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := m.Called(ctx, input)

	var output *usecase.LoginOutput
	if v, ok := ret.Get(0).(*usecase.LoginOutput); ok {
		output = v
	}

	return output, ret.Error(1)
}

// GetProfile provides a mock function with given fields: ctx, kind, id
func (m *MockAccountUsecase) GetProfile(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	ret := m.Called(ctx, kind, id)

	return accountAt(ret, 0), ret.Error(1)
}

// Deactivate provides a mock function with given fields: ctx, kind, id
func (m *MockAccountUsecase) Deactivate(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	ret := m.Called(ctx, kind, id)

	return accountAt(ret, 0), ret.Error(1)
}

func accountAt(args mock.Arguments, index int) *entity.Account {
	if v, ok := args.Get(index).(*entity.Account); ok {
		return v
	}

	return nil
}
