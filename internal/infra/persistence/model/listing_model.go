package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table.
type ListingModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title               string     `gorm:"type:varchar(200);not null"`
	Description         string     `gorm:"type:text"`
	Salary              string     `gorm:"type:varchar(100);not null"`
	BusinessID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status              string     `gorm:"type:varchar(16);not null;index"`
	City                string     `gorm:"type:varchar(100)"`
	State               string     `gorm:"type:varchar(50)"`
	WorkMode            string     `gorm:"type:varchar(16)"`
	OpenApply           bool       `gorm:"not null"`
	Validation          bool       `gorm:"not null"`
	Premium             bool       `gorm:"not null"`
	SelectedCandidateID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Business          *AccountModel           `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	SelectedCandidate *AccountModel           `gorm:"foreignKey:SelectedCandidateID;constraint:OnDelete:SET NULL"`
	Candidates        []ListingCandidateModel `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// ListingCandidateModel mirrors the 'listing_candidates' join table. A row is both the
// candidacy of the user on the listing and the entry in the user's application history.
type ListingCandidateModel struct {
	ListingID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time

	Account *AccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListingCandidateModel) TableName() string {
	return "listing_candidates"
}
