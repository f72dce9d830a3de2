package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantconfirm/internal/cache"
	"bantconfirm/internal/errors"
	"bantconfirm/internal/model"
	"bantconfirm/internal/repository"
)

const (
	settingsCacheKey = "site_settings"
	settingsCacheTTL = 5 * time.Minute
)

// SettingsUpdate carries the saved settings form. All fields overwrite; the
// admin panel always submits the full form.
type SettingsUpdate struct {
	AppName               string
	LogoURL               string
	FaviconURL            string
	ShowAppName           bool
	SocialFacebook        string
	SocialTwitter         string
	SocialLinkedin        string
	WhatsappAPIKey        string
	WhatsappPhoneNumberID string
}

// SettingsService exposes the site settings singleton and the trusted
// vendor logo list.
type SettingsService interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Refresh(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, update SettingsUpdate) (*model.SiteSettings, error)

	ListTrustedVendors(ctx context.Context) ([]model.TrustedVendor, error)
	AddTrustedVendor(ctx context.Context, vendor *model.TrustedVendor) error
	DeleteTrustedVendor(ctx context.Context, id uuid.UUID) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	trustedRepo  repository.TrustedVendorRepository
	cache        *cache.Client
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo repository.SettingsRepository, trustedRepo repository.TrustedVendorRepository, cacheClient *cache.Client) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		trustedRepo:  trustedRepo,
		cache:        cacheClient,
	}
}

// Get returns the settings singleton. An empty table behaves identically to
// a configured one, just with the default branding.
func (s *settingsService) Get(ctx context.Context) (*model.SiteSettings, error) {
	var cached model.SiteSettings
	if hit, _ := s.cache.GetJSON(ctx, settingsCacheKey, &cached); hit {
		return &cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh bypasses the cache and re-reads the settings row.
func (s *settingsService) Refresh(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return model.DefaultSiteSettings(), nil
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}

	applyDefaults(settings)
	_ = s.cache.SetJSON(ctx, settingsCacheKey, settings, settingsCacheTTL)
	return settings, nil
}

// Update saves the settings, lazily creating the row on first save.
func (s *settingsService) Update(ctx context.Context, update SettingsUpdate) (*model.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	switch {
	case err == nil:
		apply(settings, update)
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, fmt.Errorf("update settings: %w", err)
		}
	case err == gorm.ErrRecordNotFound:
		settings = &model.SiteSettings{}
		apply(settings, update)
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, fmt.Errorf("create settings: %w", err)
		}
	default:
		return nil, fmt.Errorf("load settings: %w", err)
	}

	_ = s.cache.Delete(ctx, settingsCacheKey)
	return s.Refresh(ctx)
}

// ListTrustedVendors lists trusted vendor logos name-ascending.
func (s *settingsService) ListTrustedVendors(ctx context.Context) ([]model.TrustedVendor, error) {
	return s.trustedRepo.List(ctx)
}

// AddTrustedVendor adds a logo entry. A nameless entry is rejected before
// any round-trip.
func (s *settingsService) AddTrustedVendor(ctx context.Context, vendor *model.TrustedVendor) error {
	if strings.TrimSpace(vendor.Name) == "" {
		return errors.ErrNameRequired
	}
	return s.trustedRepo.Create(ctx, vendor)
}

// DeleteTrustedVendor removes a logo entry.
func (s *settingsService) DeleteTrustedVendor(ctx context.Context, id uuid.UUID) error {
	return s.trustedRepo.Delete(ctx, id)
}

func apply(settings *model.SiteSettings, update SettingsUpdate) {
	settings.AppName = update.AppName
	settings.LogoURL = update.LogoURL
	settings.FaviconURL = update.FaviconURL
	settings.ShowAppName = update.ShowAppName
	settings.SocialFacebook = update.SocialFacebook
	settings.SocialTwitter = update.SocialTwitter
	settings.SocialLinkedin = update.SocialLinkedin
	settings.WhatsappAPIKey = update.WhatsappAPIKey
	settings.WhatsappPhoneNumberID = update.WhatsappPhoneNumberID
}

// applyDefaults fills blank branding fields with the hinted defaults so an
// half-filled row renders like a configured one.
func applyDefaults(settings *model.SiteSettings) {
	if strings.TrimSpace(settings.AppName) == "" {
		settings.AppName = model.DefaultAppName
	}
	if strings.TrimSpace(settings.LogoURL) == "" {
		settings.LogoURL = model.DefaultLogoURL
	}
}
