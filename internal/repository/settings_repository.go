package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantconfirm/internal/model"
)

// SettingsRepository defines persistence for the site settings singleton.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Create(ctx context.Context, settings *model.SiteSettings) error
	Update(ctx context.Context, settings *model.SiteSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the settings row. Only the first row is meaningful; callers
// treat gorm.ErrRecordNotFound as "use defaults".
func (r *settingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	var settings model.SiteSettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create inserts the settings row. Used only for lazy creation on first save.
func (r *settingsRepository) Create(ctx context.Context, settings *model.SiteSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

// Update updates the settings row in place.
func (r *settingsRepository) Update(ctx context.Context, settings *model.SiteSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

// TrustedVendorRepository defines persistence for trusted vendor logos.
type TrustedVendorRepository interface {
	Create(ctx context.Context, vendor *model.TrustedVendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.TrustedVendor, error)
}

type trustedVendorRepository struct {
	db *gorm.DB
}

// NewTrustedVendorRepository creates a new trusted vendor repository.
func NewTrustedVendorRepository(db *gorm.DB) TrustedVendorRepository {
	return &trustedVendorRepository{db: db}
}

// Create creates a new trusted vendor entry.
func (r *trustedVendorRepository) Create(ctx context.Context, vendor *model.TrustedVendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

// Delete removes a trusted vendor entry.
func (r *trustedVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TrustedVendor{}, "id = ?", id).Error
}

// List lists trusted vendors name-ascending.
func (r *trustedVendorRepository) List(ctx context.Context) ([]model.TrustedVendor, error) {
	var vendors []model.TrustedVendor
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}
