package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantconfirm/internal/model"
)

// EnquiryRepository defines enquiry persistence operations.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *model.Enquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Enquiry, error)
	ListAll(ctx context.Context) ([]model.Enquiry, error)
	ListPending(ctx context.Context) ([]model.Enquiry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Enquiry, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Enquiry, error)
	Assign(ctx context.Context, enquiryID, vendorID uuid.UUID) (*model.Enquiry, error)
}

type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new enquiry repository.
func NewEnquiryRepository(db *gorm.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

// Create creates a new enquiry record.
func (r *enquiryRepository) Create(ctx context.Context, enquiry *model.Enquiry) error {
	return r.db.WithContext(ctx).Create(enquiry).Error
}

// FindByID finds an enquiry by ID.
func (r *enquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Enquiry, error) {
	var enquiry model.Enquiry
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&enquiry).Error; err != nil {
		return nil, err
	}
	return &enquiry, nil
}

// ListAll lists every enquiry with the requester profile preloaded, most
// recent first. Creation-time descending is a hard requirement of the admin
// triage view and the export.
func (r *enquiryRepository) ListAll(ctx context.Context) ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

// ListPending lists unassigned enquiries, most recent first.
func (r *enquiryRepository) ListPending(ctx context.Context) ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", model.EnquiryStatusPending).
		Order("created_at DESC").
		Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

// ListByUser lists a requester's own enquiries, most recent first.
func (r *enquiryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

// ListByVendor lists enquiries assigned to a vendor, most recent first.
func (r *enquiryRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("assigned_vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

// Assign sets status and vendor reference together inside a transaction,
// locking the enquiry row so two concurrent assignments serialize instead
// of interleaving the two field writes. Re-assignment overwrites the
// previous vendor; no history is kept.
func (r *enquiryRepository) Assign(ctx context.Context, enquiryID, vendorID uuid.UUID) (*model.Enquiry, error) {
	var enquiry model.Enquiry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("id = ?", enquiryID).First(&enquiry).Error; err != nil {
			return err
		}
		enquiry.Status = model.EnquiryStatusAssigned
		enquiry.AssignedVendorID = &vendorID
		return tx.Model(&model.Enquiry{}).
			Where("id = ?", enquiryID).
			Updates(map[string]interface{}{
				"status":             model.EnquiryStatusAssigned,
				"assigned_vendor_id": vendorID,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}
