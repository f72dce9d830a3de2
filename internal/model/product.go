package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog offering. Pricing is a display label ("₹50/TB",
// "Starting at ₹1,000/mo"), not a structured amount.
type Product struct {
	ID            uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string     `json:"name" gorm:"size:255;not null;index"`
	Image         string     `json:"image" gorm:"type:text"`
	ShortFeatures []string   `json:"short_features" gorm:"serializer:json"`
	Pricing       string     `json:"pricing" gorm:"size:255"`
	OriginalPrice string     `json:"original_price,omitempty" gorm:"size:255"`
	Category      string     `json:"category" gorm:"size:255;not null;index"`
	Description   string     `json:"description,omitempty" gorm:"type:text"`
	Rating        float64    `json:"rating,omitempty"`
	Tags          []string   `json:"tags,omitempty" gorm:"serializer:json"`
	VendorID      *uuid.UUID `json:"vendor_id,omitempty" gorm:"type:char(36);index"`
	Leads         int        `json:"leads"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
