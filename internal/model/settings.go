package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default branding used when no settings row has been saved yet. An empty
// table behaves identically to a configured one, just with generic branding.
const (
	DefaultAppName = "BANTConfirm"
	DefaultLogoURL = "https://assets-global.website-files.com/62c01991206f74a0678d85f6/62cf9b152d244c062c3e1644_bant-confirm-favicon.png"
)

// SiteSettings is a process-wide singleton row holding branding, social
// links and messaging-API credentials. At most one row is meaningful; it is
// lazily created on first admin save.
type SiteSettings struct {
	ID                    uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	AppName               string    `json:"app_name" gorm:"size:255"`
	LogoURL               string    `json:"logo_url" gorm:"type:text"`
	FaviconURL            string    `json:"favicon_url" gorm:"type:text"`
	ShowAppName           bool      `json:"show_app_name" gorm:"default:true"`
	SocialFacebook        string    `json:"social_facebook" gorm:"size:512"`
	SocialTwitter         string    `json:"social_twitter" gorm:"size:512"`
	SocialLinkedin        string    `json:"social_linkedin" gorm:"size:512"`
	WhatsappAPIKey        string    `json:"whatsapp_api_key" gorm:"size:512"`
	WhatsappPhoneNumberID string    `json:"whatsapp_phone_number_id" gorm:"size:255"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// DefaultSiteSettings returns the hinted defaults used while no row exists.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		AppName:     DefaultAppName,
		LogoURL:     DefaultLogoURL,
		ShowAppName: true,
	}
}

// BeforeCreate sets UUID before creating the record.
func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
