package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrustedVendor is a display-only logo entry shown on the landing page.
type TrustedVendor struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Logo      string    `json:"logo" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *TrustedVendor) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
