package service

import (
	"context"

	"jobboard/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new instance of MockEventPublisher and asserts its expectations on cleanup.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// PublishListingEvent provides a mock function with given fields: ctx, event
func (m *MockEventPublisher) PublishListingEvent(ctx context.Context, event *service.ListingEvent) error {
	ret := m.Called(ctx, event)

	return ret.Error(0)
}

// Close provides a mock function with no fields
func (m *MockEventPublisher) Close() error {
	ret := m.Called()

	return ret.Error(0)
}
