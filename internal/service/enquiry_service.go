package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantconfirm/internal/errors"
	"bantconfirm/internal/model"
	"bantconfirm/internal/qualifier"
	"bantconfirm/internal/repository"
)

// ExportFilename is the fixed download name of the enquiries export.
const ExportFilename = "enquiries_data.csv"

// csvHeader fixes the export column order; spreadsheet tooling depends on it.
var csvHeader = []string{
	"EnquiryID", "Date", "UserName", "UserEmail", "Mobile", "Company",
	"Category", "Need", "Budget", "Authority", "Timeframe", "Status",
}

// EnquiryService manages the lead lifecycle: qualification of free text,
// persistence of the confirmed draft, admin triage and vendor assignment.
type EnquiryService interface {
	Qualify(ctx context.Context, input string) (*qualifier.Result, error)
	Create(ctx context.Context, userID uuid.UUID, result *qualifier.Result) (*model.Enquiry, error)
	ListPending(ctx context.Context) ([]model.Enquiry, error)
	ListAll(ctx context.Context) ([]model.Enquiry, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Enquiry, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Enquiry, error)
	ListAssignableVendors(ctx context.Context) ([]model.UserProfile, error)
	AssignVendor(ctx context.Context, enquiryID, vendorID uuid.UUID) (*model.Enquiry, error)
	ExportCSV(enquiries []model.Enquiry) ([]byte, error)
}

type enquiryService struct {
	enquiryRepo repository.EnquiryRepository
	userRepo    repository.UserRepository
	qualifier   qualifier.Qualifier
}

// NewEnquiryService creates a new enquiry service.
func NewEnquiryService(enquiryRepo repository.EnquiryRepository, userRepo repository.UserRepository, q qualifier.Qualifier) EnquiryService {
	return &enquiryService{
		enquiryRepo: enquiryRepo,
		userRepo:    userRepo,
		qualifier:   q,
	}
}

// Qualify runs the configured qualifier over the requirement text. Which
// strategy answers is a deployment choice; callers cannot tell them apart
// except by answer quality.
func (s *enquiryService) Qualify(ctx context.Context, input string) (*qualifier.Result, error) {
	return s.qualifier.Qualify(ctx, input)
}

// Create persists a confirmed qualification draft as a pending enquiry with
// no assigned vendor.
func (s *enquiryService) Create(ctx context.Context, userID uuid.UUID, result *qualifier.Result) (*model.Enquiry, error) {
	enquiry := &model.Enquiry{
		UserID:          userID,
		Category:        result.Category,
		Budget:          result.Budget,
		Authority:       result.Authority,
		Need:            result.Need,
		Timeframe:       result.Timeframe,
		FullEnquiryText: result.Summary,
		Status:          model.EnquiryStatusPending,
	}

	if err := s.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("create enquiry: %w", err)
	}
	return enquiry, nil
}

// ListPending returns unassigned enquiries, most recent first.
func (s *enquiryService) ListPending(ctx context.Context) ([]model.Enquiry, error) {
	return s.enquiryRepo.ListPending(ctx)
}

// ListAll returns every enquiry for admin triage, most recent first.
func (s *enquiryService) ListAll(ctx context.Context) ([]model.Enquiry, error) {
	return s.enquiryRepo.ListAll(ctx)
}

// ListForUser returns a requester's own enquiries.
func (s *enquiryService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Enquiry, error) {
	return s.enquiryRepo.ListByUser(ctx, userID)
}

// ListForVendor returns enquiries assigned to a vendor.
func (s *enquiryService) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Enquiry, error) {
	return s.enquiryRepo.ListByVendor(ctx, vendorID)
}

// ListAssignableVendors returns the active vendors an admin may assign.
func (s *enquiryService) ListAssignableVendors(ctx context.Context) ([]model.UserProfile, error) {
	return s.userRepo.ListActiveVendors(ctx)
}

// AssignVendor assigns an enquiry to an active vendor. Eligibility is
// validated before any write; status and vendor reference are then set
// together under a row lock. Re-assignment overwrites the previous vendor.
func (s *enquiryService) AssignVendor(ctx context.Context, enquiryID, vendorID uuid.UUID) (*model.Enquiry, error) {
	vendor, err := s.userRepo.FindByID(ctx, vendorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrVendorNotEligible
		}
		return nil, fmt.Errorf("find vendor: %w", err)
	}
	if vendor.Role != model.RoleVendor || vendor.Status != model.StatusActive {
		return nil, errors.ErrVendorNotEligible
	}

	enquiry, err := s.enquiryRepo.Assign(ctx, enquiryID, vendorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("assign vendor: %w", err)
	}
	return enquiry, nil
}

// ExportCSV serializes enquiries into the fixed-column export. Fields
// containing commas are quoted and embedded quotes doubled, per standard
// CSV quoting.
func (s *enquiryService) ExportCSV(enquiries []model.Enquiry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range enquiries {
		row := []string{
			e.ID.String(),
			e.CreatedAt.Format("1/2/2006"),
			e.User.Username,
			e.User.Email,
			e.User.Mobile,
			e.User.CompanyName,
			e.Category,
			e.Need,
			e.Budget,
			e.Authority,
			e.Timeframe,
			string(e.Status),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
