// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"context"

	"jobboard/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockMailSender is a mock implementation of service.MailSender.
type MockMailSender struct {
	mock.Mock
}

// NewMockMailSender creates a new instance of MockMailSender and asserts its expectations on cleanup.
func NewMockMailSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMailSender {
	m := &MockMailSender{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Send provides a mock function with given fields: ctx, email
func (m *MockMailSender) Send(ctx context.Context, email service.Email) error {
	ret := m.Called(ctx, email)

	return ret.Error(0)
}
