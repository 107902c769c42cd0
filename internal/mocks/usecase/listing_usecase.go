package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockListingUsecase is a mock implementation of usecase.ListingUsecase.
type MockListingUsecase struct {
	mock.Mock
}

// NewMockListingUsecase creates a new instance of MockListingUsecase and asserts its expectations on cleanup.
func NewMockListingUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListingUsecase {
	m := &MockListingUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Create provides a mock function with given fields: ctx, businessID, input
func (m *MockListingUsecase) Create(ctx context.Context, businessID uuid.UUID, input usecase.CreateListingInput) (*entity.Listing, error) {
	ret := m.Called(ctx, businessID, input)

	return listingAt(ret, 0), ret.Error(1)
}

// Get provides a mock function with given fields: ctx, id
func (m *MockListingUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	ret := m.Called(ctx, id)

	return listingAt(ret, 0), ret.Error(1)
}

// GetPublic provides a mock function with given fields: ctx, id
func (m *MockListingUsecase) GetPublic(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	ret := m.Called(ctx, id)

	return listingAt(ret, 0), ret.Error(1)
}

// ListOpen provides a mock function with given fields: ctx
func (m *MockListingUsecase) ListOpen(ctx context.Context) ([]*entity.Listing, error) {
	ret := m.Called(ctx)

	var listings []*entity.Listing
	if v, ok := ret.Get(0).([]*entity.Listing); ok {
		listings = v
	}

	return listings, ret.Error(1)
}

// Edit provides a mock function with given fields: ctx, businessID, id, input
func (m *MockListingUsecase) Edit(ctx context.Context, businessID, id uuid.UUID, input usecase.EditListingInput) (*entity.Listing, error) {
	ret := m.Called(ctx, businessID, id, input)

	return listingAt(ret, 0), ret.Error(1)
}

// Cancel provides a mock function with given fields: ctx, businessID, id
func (m *MockListingUsecase) Cancel(ctx context.Context, businessID, id uuid.UUID) (*entity.Listing, error) {
	ret := m.Called(ctx, businessID, id)

	return listingAt(ret, 0), ret.Error(1)
}

// Apply provides a mock function with given fields: ctx, userID, listingID
func (m *MockListingUsecase) Apply(ctx context.Context, userID, listingID uuid.UUID) error {
	ret := m.Called(ctx, userID, listingID)

	return ret.Error(0)
}

// Unapply provides a mock function with given fields: ctx, userID, listingID
func (m *MockListingUsecase) Unapply(ctx context.Context, userID, listingID uuid.UUID) error {
	ret := m.Called(ctx, userID, listingID)

	return ret.Error(0)
}

// Approve provides a mock function with given fields: ctx, businessID, listingID, userID
func (m *MockListingUsecase) Approve(ctx context.Context, businessID, listingID, userID uuid.UUID) (*entity.Listing, error) {
	ret := m.Called(ctx, businessID, listingID, userID)

	return listingAt(ret, 0), ret.Error(1)
}

func listingAt(args mock.Arguments, index int) *entity.Listing {
	if v, ok := args.Get(index).(*entity.Listing); ok {
		return v
	}

	return nil
}
