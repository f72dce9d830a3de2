package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole enumerates the three fixed roles in the marketplace.
type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleVendor UserRole = "vendor"
	RoleAdmin  UserRole = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// UserStatus enumerates account statuses. Vendors start pending and need
// admin approval before they can be assigned enquiries.
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
	StatusPending   UserStatus = "pending"
)

// Valid reports whether the status is one of the known statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusPending:
		return true
	}
	return false
}

// UserProfile represents an actor: a buyer, a vendor, or an admin.
type UserProfile struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username     string     `json:"username" gorm:"size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'user';index"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Mobile       string     `json:"mobile,omitempty" gorm:"size:20"`
	CompanyName  string     `json:"company_name,omitempty" gorm:"size:255"`
	Location     string     `json:"location,omitempty" gorm:"size:255"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName keeps the table aligned with the public users table of the
// original schema.
func (UserProfile) TableName() string {
	return "users"
}

// BeforeCreate sets UUID before creating the record.
func (u *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
