// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultProfilePicture is stored when a user signs up without a picture.
const DefaultProfilePicture = "https://cdn-icons-png.flaticon.com/512/149/149071.png"

// cnpjPattern is the formatted CNPJ, e.g. 12.345.678/0001-90.
var cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// Account is a login-capable identity, either a candidate (User) or an employer (Business).
// Exactly one of UserProfile and BusinessProfile is set, matching Kind.
type Account struct {
	ID           uuid.UUID
	Kind         AccountKind
	Name         string
	Email        string // Lowercased, unique per Kind.
	Role         Role
	Phone        string
	PictureURL   string // Profile picture for users, logo for businesses.
	PasswordHash string
	ResetToken   string // Empty unless a password reset is in flight.
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	UserProfile     *UserProfile
	BusinessProfile *BusinessProfile
}

// UserProfile holds data specific to candidate accounts.
type UserProfile struct {
	Resume string
	// HistoryListingIDs is the set of listings the user has applied to.
	HistoryListingIDs []uuid.UUID
	History           []*Listing
}

// BusinessProfile holds data specific to employer accounts.
type BusinessProfile struct {
	CNPJ        string
	Description string
	Address     Address
	// Offers are the listings created by the business.
	Offers []*Listing
}

// Sanitized returns a shallow copy with credential material cleared.
// Every account leaving the use case layer goes through it.
func (a *Account) Sanitized() *Account {
	if a == nil {
		return nil
	}

	clone := *a
	clone.PasswordHash = ""
	clone.ResetToken = ""

	return &clone
}

// NormalizeEmail trims and lowercases an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidCNPJ reports whether cnpj is written in the 00.000.000/0000-00 format.
func IsValidCNPJ(cnpj string) bool {
	return cnpjPattern.MatchString(cnpj)
}
