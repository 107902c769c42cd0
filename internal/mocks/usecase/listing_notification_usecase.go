package usecase

import (
	"context"

	"jobboard/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockListingNotificationUsecase is a mock implementation of usecase.ListingNotificationUsecase.
type MockListingNotificationUsecase struct {
	mock.Mock
}

// NewMockListingNotificationUsecase creates a new instance of MockListingNotificationUsecase and asserts its expectations on cleanup.
func NewMockListingNotificationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListingNotificationUsecase {
	m := &MockListingNotificationUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// HandleListingEvent provides a mock function with given fields: ctx, event
func (m *MockListingNotificationUsecase) HandleListingEvent(ctx context.Context, event *service.ListingEvent) error {
	ret := m.Called(ctx, event)

	return ret.Error(0)
}
