package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockUploadStorage is a mock implementation of service.UploadStorage.
type MockUploadStorage struct {
	mock.Mock
}

// NewMockUploadStorage creates a new instance of MockUploadStorage and asserts its expectations on cleanup.
func NewMockUploadStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUploadStorage {
	m := &MockUploadStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Save provides a mock function with given fields: ctx, key, contentType, content
func (m *MockUploadStorage) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	ret := m.Called(ctx, key, contentType, content)

	return ret.String(0), ret.Error(1)
}

// URL provides a mock function with given fields: key
func (m *MockUploadStorage) URL(key string) string {
	ret := m.Called(key)

	return ret.String(0)
}
