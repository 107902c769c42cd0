package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateListingInput defines the data a business provides for a new job listing.
type CreateListingInput struct {
	Title       string
	Description string
	Salary      string
	City        string
	State       string
	WorkMode    entity.WorkMode
	OpenApply   bool
	Validation  *bool // Defaults to true.
	Premium     bool
}

// EditListingInput carries a partial listing update. Nil fields are left untouched.
// Status, SelectedCandidate and Candidates are never editable and are only present
// so attempts to write them can be rejected.
type EditListingInput struct {
	Title       *string
	Description *string
	Salary      *string
	City        *string
	State       *string
	WorkMode    *entity.WorkMode
	OpenApply   *bool
	Validation  *bool
	Premium     *bool

	Status            *string
	SelectedCandidate *string
	Candidates        *[]string
}

// ListingUsecase defines job listing operations and the application state machine.
type ListingUsecase interface {
	Create(ctx context.Context, businessID uuid.UUID, input CreateListingInput) (*entity.Listing, error)
	// Get returns the listing with business, candidates and selected candidate populated.
	Get(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	// GetPublic returns the listing with only the business populated.
	GetPublic(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	ListOpen(ctx context.Context) ([]*entity.Listing, error)
	Edit(ctx context.Context, businessID, id uuid.UUID, input EditListingInput) (*entity.Listing, error)
	Cancel(ctx context.Context, businessID, id uuid.UUID) (*entity.Listing, error)
	Apply(ctx context.Context, userID, listingID uuid.UUID) error
	Unapply(ctx context.Context, userID, listingID uuid.UUID) error
	// Approve closes the listing with userID as the selected candidate.
	Approve(ctx context.Context, businessID, listingID, userID uuid.UUID) (*entity.Listing, error)
}
