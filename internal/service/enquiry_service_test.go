package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bantconfirm/internal/errors"
	"bantconfirm/internal/model"
	"bantconfirm/internal/qualifier"
)

// MockEnquiryRepository is a mock implementation of EnquiryRepository.
type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) Create(ctx context.Context, enquiry *model.Enquiry) error {
	args := m.Called(ctx, enquiry)
	return args.Error(0)
}

func (m *MockEnquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) ListAll(ctx context.Context) ([]model.Enquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) ListPending(ctx context.Context) ([]model.Enquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Enquiry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Enquiry, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) Assign(ctx context.Context, enquiryID, vendorID uuid.UUID) (*model.Enquiry, error) {
	args := m.Called(ctx, enquiryID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enquiry), args.Error(1)
}

func TestEnquiryService_Create(t *testing.T) {
	mockEnquiryRepo := new(MockEnquiryRepository)
	mockUserRepo := new(MockUserRepository)
	userID := uuid.New()

	var created *model.Enquiry
	mockEnquiryRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Enquiry")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Enquiry)
		}).
		Return(nil)

	svc := NewEnquiryService(mockEnquiryRepo, mockUserRepo, qualifier.NewKeywordQualifier())

	result := &qualifier.Result{
		Budget:    "2000/month",
		Authority: "Decision maker",
		Need:      "CRM with WhatsApp integration",
		Timeframe: "Next week",
		Summary:   "Customer needs a CRM platform.",
		Category:  "CRM Software",
	}

	enquiry, err := svc.Create(context.Background(), userID, result)

	assert.NoError(t, err)
	assert.NotNil(t, enquiry)
	assert.Same(t, created, enquiry)

	// New enquiries are pending with no vendor
	assert.Equal(t, model.EnquiryStatusPending, enquiry.Status)
	assert.Nil(t, enquiry.AssignedVendorID)

	assert.Equal(t, userID, enquiry.UserID)
	assert.Equal(t, "2000/month", enquiry.Budget)
	assert.Equal(t, "Decision maker", enquiry.Authority)
	assert.Equal(t, "CRM with WhatsApp integration", enquiry.Need)
	assert.Equal(t, "Next week", enquiry.Timeframe)
	assert.Equal(t, "Customer needs a CRM platform.", enquiry.FullEnquiryText)
	assert.Equal(t, "CRM Software", enquiry.Category)

	mockEnquiryRepo.AssertExpectations(t)
}

func TestEnquiryService_AssignVendor(t *testing.T) {
	enquiryID := uuid.New()
	vendorID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockEnquiryRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name: "successful assignment",
			setupMock: func(mEnq *MockEnquiryRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, vendorID).Return(&model.UserProfile{
					ID:     vendorID,
					Role:   model.RoleVendor,
					Status: model.StatusActive,
				}, nil)
				mEnq.On("Assign", mock.Anything, enquiryID, vendorID).Return(&model.Enquiry{
					ID:               enquiryID,
					Status:           model.EnquiryStatusAssigned,
					AssignedVendorID: &vendorID,
				}, nil)
			},
		},
		{
			name: "vendor does not exist",
			setupMock: func(mEnq *MockEnquiryRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, vendorID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrVendorNotEligible,
		},
		{
			name: "target is not a vendor",
			setupMock: func(mEnq *MockEnquiryRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, vendorID).Return(&model.UserProfile{
					ID:     vendorID,
					Role:   model.RoleUser,
					Status: model.StatusActive,
				}, nil)
			},
			expectedError: errors.ErrVendorNotEligible,
		},
		{
			name: "vendor is suspended",
			setupMock: func(mEnq *MockEnquiryRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, vendorID).Return(&model.UserProfile{
					ID:     vendorID,
					Role:   model.RoleVendor,
					Status: model.StatusSuspended,
				}, nil)
			},
			expectedError: errors.ErrVendorNotEligible,
		},
		{
			name: "vendor still pending approval",
			setupMock: func(mEnq *MockEnquiryRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, vendorID).Return(&model.UserProfile{
					ID:     vendorID,
					Role:   model.RoleVendor,
					Status: model.StatusPending,
				}, nil)
			},
			expectedError: errors.ErrVendorNotEligible,
		},
		{
			name: "enquiry does not exist",
			setupMock: func(mEnq *MockEnquiryRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, vendorID).Return(&model.UserProfile{
					ID:     vendorID,
					Role:   model.RoleVendor,
					Status: model.StatusActive,
				}, nil)
				mEnq.On("Assign", mock.Anything, enquiryID, vendorID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrEnquiryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEnquiryRepo := new(MockEnquiryRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockEnquiryRepo, mockUserRepo)

			svc := NewEnquiryService(mockEnquiryRepo, mockUserRepo, qualifier.NewKeywordQualifier())

			enquiry, err := svc.AssignVendor(context.Background(), enquiryID, vendorID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, enquiry)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, enquiry)
				// Status and vendor reference move together
				assert.Equal(t, model.EnquiryStatusAssigned, enquiry.Status)
				assert.NotNil(t, enquiry.AssignedVendorID)
				assert.Equal(t, vendorID, *enquiry.AssignedVendorID)
			}

			// An ineligible vendor never reaches the enquiry store
			mockEnquiryRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestEnquiryService_ExportCSV(t *testing.T) {
	mockEnquiryRepo := new(MockEnquiryRepository)
	mockUserRepo := new(MockUserRepository)
	svc := NewEnquiryService(mockEnquiryRepo, mockUserRepo, qualifier.NewKeywordQualifier())

	enquiryID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	createdAt := time.Date(2026, 3, 7, 10, 30, 0, 0, time.UTC)

	enquiries := []model.Enquiry{
		{
			ID:        enquiryID,
			CreatedAt: createdAt,
			User: model.UserProfile{
				Username:    "StandardUser",
				Email:       "user@example.com",
				Mobile:      "+91 9876543210",
				CompanyName: "Acme, Ltd.",
			},
			Category:  "CRM Software",
			Need:      `He said "yes" to this, and more`,
			Budget:    "2000/month",
			Authority: "Decision maker",
			Timeframe: "Next week",
			Status:    model.EnquiryStatusPending,
		},
	}

	data, err := svc.ExportCSV(enquiries)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 2)

	assert.Equal(t, "EnquiryID,Date,UserName,UserEmail,Mobile,Company,Category,Need,Budget,Authority,Timeframe,Status", lines[0])

	// Fields containing commas or quotes are quoted, embedded quotes doubled
	assert.Contains(t, lines[1], `"Acme, Ltd."`)
	assert.Contains(t, lines[1], `"He said ""yes"" to this, and more"`)
	assert.Contains(t, lines[1], "3/7/2026")
	assert.Contains(t, lines[1], enquiryID.String())
	assert.Contains(t, lines[1], "pending")
}

func TestEnquiryService_ExportCSV_Empty(t *testing.T) {
	mockEnquiryRepo := new(MockEnquiryRepository)
	mockUserRepo := new(MockUserRepository)
	svc := NewEnquiryService(mockEnquiryRepo, mockUserRepo, qualifier.NewKeywordQualifier())

	data, err := svc.ExportCSV(nil)

	assert.NoError(t, err)
	assert.Equal(t, "EnquiryID,Date,UserName,UserEmail,Mobile,Company,Category,Need,Budget,Authority,Timeframe,Status\n", string(data))
}

func TestEnquiryService_ListAssignableVendors(t *testing.T) {
	mockEnquiryRepo := new(MockEnquiryRepository)
	mockUserRepo := new(MockUserRepository)

	vendors := []model.UserProfile{
		{ID: uuid.New(), Role: model.RoleVendor, Status: model.StatusActive, Username: "TechSolutions Inc."},
	}
	mockUserRepo.On("ListActiveVendors", mock.Anything).Return(vendors, nil)

	svc := NewEnquiryService(mockEnquiryRepo, mockUserRepo, qualifier.NewKeywordQualifier())

	got, err := svc.ListAssignableVendors(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, vendors, got)
	mockUserRepo.AssertExpectations(t)
}
