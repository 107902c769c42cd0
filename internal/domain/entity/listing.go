package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus is the lifecycle state of a job listing.
// OPEN moves to CLOSED on approval or CANCELLED on cancellation; neither is left again
// except that approving a CLOSED listing replaces the selected candidate.
type ListingStatus string

const (
	ListingStatusOpen      ListingStatus = "OPEN"
	ListingStatusClosed    ListingStatus = "CLOSED"
	ListingStatusCancelled ListingStatus = "CANCELLED"
)

// IsValid checks if the ListingStatus is a known value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusOpen, ListingStatusClosed, ListingStatusCancelled:
		return true
	default:
		return false
	}
}

// WorkMode describes where the job is performed.
type WorkMode string

const (
	WorkModeRemote WorkMode = "REMOTE"
	WorkModeHybrid WorkMode = "HYBRID"
	WorkModeOnSite WorkMode = "ON_SITE"
)

// IsValid checks if the WorkMode is a known value.
func (m WorkMode) IsValid() bool {
	switch m {
	case WorkModeRemote, WorkModeHybrid, WorkModeOnSite:
		return true
	default:
		return false
	}
}

// DefaultSalary is used when a listing is created without a salary.
const DefaultSalary = "negotiable"

// Listing is a job offer published by a business.
type Listing struct {
	ID          uuid.UUID
	Title       string
	Description string
	Salary      string
	BusinessID  uuid.UUID
	Status      ListingStatus
	City        string
	State       string
	WorkMode    WorkMode
	OpenApply   bool
	Validation  bool
	Premium     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CandidateIDs        []uuid.UUID
	SelectedCandidateID *uuid.UUID

	// Populated on detailed reads only.
	Business          *Account
	Candidates        []*Account
	SelectedCandidate *Account
}
