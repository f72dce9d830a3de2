package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnquiryStatus represents the status of an enquiry. Only the
// pending -> assigned transition is wired; approved and rejected are
// reserved in the schema but have no transition.
type EnquiryStatus string

const (
	EnquiryStatusPending  EnquiryStatus = "pending"
	EnquiryStatusApproved EnquiryStatus = "approved"
	EnquiryStatusRejected EnquiryStatus = "rejected"
	EnquiryStatusAssigned EnquiryStatus = "assigned"
)

// Enquiry is a qualified lead: the four BANT dimensions plus a generated
// summary, tied to the requesting user. Status becomes assigned only
// together with a non-nil AssignedVendorID; the two are written atomically.
type Enquiry struct {
	ID               uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	UserID           uuid.UUID     `json:"user_id" gorm:"type:char(36);not null;index"`
	Category         string        `json:"category" gorm:"size:255;not null"`
	Budget           string        `json:"budget" gorm:"size:512;not null"`
	Authority        string        `json:"authority" gorm:"size:512;not null"`
	Need             string        `json:"need" gorm:"type:text;not null"`
	Timeframe        string        `json:"timeframe" gorm:"size:512;not null"`
	FullEnquiryText  string        `json:"full_enquiry_text" gorm:"type:text"`
	Status           EnquiryStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	AssignedVendorID *uuid.UUID    `json:"assigned_vendor_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt        time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt        time.Time     `json:"updated_at"`

	// Relations
	User UserProfile `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
