package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockUploadUsecase is a mock implementation of usecase.UploadUsecase.
type MockUploadUsecase struct {
	mock.Mock
}

// NewMockUploadUsecase creates a new instance of MockUploadUsecase and asserts its expectations on cleanup.
func NewMockUploadUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUploadUsecase {
	m := &MockUploadUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// UploadImage provides a mock function with given fields: ctx, filename, content
func (m *MockUploadUsecase) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	ret := m.Called(ctx, filename, content)

	return ret.String(0), ret.Error(1)
}
