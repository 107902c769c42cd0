package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. Users and businesses share the table and are
// partitioned by kind; the (kind, email) pair is unique.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind         string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_accounts_kind_email,priority:1"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_kind_email,priority:2"`
	Name         string    `gorm:"type:varchar(150);not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	Phone        string    `gorm:"type:varchar(32)"`
	PictureURL   string    `gorm:"type:text"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	ResetToken   string    `gorm:"type:text;not null;default:'';index"`
	Active       bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	UserProfile     *UserProfileModel     `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	BusinessProfile *BusinessProfileModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// UserProfileModel mirrors the 'user_profiles' table.
type UserProfileModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Resume    string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// BusinessProfileModel mirrors the 'business_profiles' table.
type BusinessProfileModel struct {
	AccountID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CNPJ         string    `gorm:"column:cnpj;type:varchar(18);uniqueIndex:idx_business_profiles_cnpj"`
	Description  string    `gorm:"type:text"`
	Street       string    `gorm:"type:varchar(255)"`
	Number       string    `gorm:"type:varchar(16)"`
	Neighborhood string    `gorm:"type:varchar(100)"`
	PostalCode   string    `gorm:"type:varchar(16)"`
	Complement   string    `gorm:"type:varchar(100)"`
	City         string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:varchar(50)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
