package repository

import (
	"context"
	"errors"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrListingNotFound is returned when no listing matches the lookup.
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingStatusConflict is returned when a guarded status change finds the listing
	// in a status it may not leave.
	ErrListingStatusConflict = errors.New("listing status does not allow this transition")
)

// ListingUpdate carries the editable listing fields. Nil fields are left untouched.
type ListingUpdate struct {
	Title       *string
	Description *string
	Salary      *string
	City        *string
	State       *string
	WorkMode    *entity.WorkMode
	OpenApply   *bool
	Validation  *bool
	Premium     *bool
}

// IsEmpty reports whether the update carries no field.
func (u ListingUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Salary == nil && u.City == nil &&
		u.State == nil && u.WorkMode == nil && u.OpenApply == nil && u.Validation == nil && u.Premium == nil
}

// ListingRepository persists job listings and their candidate sets.
// Every mutating method is a single atomic statement.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID loads the listing with its candidate ids and selected candidate id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	FindByStatus(ctx context.Context, status entity.ListingStatus) ([]*entity.Listing, error)

	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Listing, error)

	// FindByCandidate returns the listings the user has applied to.
	FindByCandidate(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error)

	Update(ctx context.Context, id uuid.UUID, update ListingUpdate) error

	// AddCandidate is idempotent; adding an existing candidate is not an error.
	AddCandidate(ctx context.Context, listingID, userID uuid.UUID) error

	// RemoveCandidate is idempotent; removing an absent candidate is not an error.
	RemoveCandidate(ctx context.Context, listingID, userID uuid.UUID) error

	// Close sets the listing CLOSED with the selected candidate, provided the current
	// status is OPEN or CLOSED.
	Close(ctx context.Context, listingID, selectedUserID uuid.UUID) error

	// Cancel sets the listing CANCELLED, provided the current status is OPEN or CANCELLED.
	Cancel(ctx context.Context, listingID uuid.UUID) error
}
