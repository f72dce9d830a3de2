package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bantconfirm/internal/errors"
	"bantconfirm/internal/model"
)

func TestUserService_SetStatus(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		status        model.UserStatus
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:   "suspend a regular user",
			status: model.StatusSuspended,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.UserProfile{
					ID:     userID,
					Role:   model.RoleUser,
					Status: model.StatusActive,
				}, nil)
				m.On("UpdateStatus", mock.Anything, userID, model.StatusSuspended).Return(nil)
			},
		},
		{
			name:   "admin cannot be suspended",
			status: model.StatusSuspended,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.UserProfile{
					ID:     userID,
					Role:   model.RoleAdmin,
					Status: model.StatusActive,
				}, nil)
			},
			expectedError: errors.ErrAdminImmutable,
		},
		{
			name:   "admin can be set active",
			status: model.StatusActive,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.UserProfile{
					ID:     userID,
					Role:   model.RoleAdmin,
					Status: model.StatusActive,
				}, nil)
				m.On("UpdateStatus", mock.Anything, userID, model.StatusActive).Return(nil)
			},
		},
		{
			name:          "unknown status value",
			status:        model.UserStatus("banned"),
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidStatus,
		},
		{
			name:   "user not found",
			status: model.StatusSuspended,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.SetStatus(context.Background(), userID, tt.status)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.status, user.Status)
			}

			// The guard rejects before any write reaches the store
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ApproveVendor(t *testing.T) {
	vendorID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "approve a pending vendor",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, vendorID).Return(&model.UserProfile{
					ID:     vendorID,
					Role:   model.RoleVendor,
					Status: model.StatusPending,
				}, nil)
				m.On("UpdateStatus", mock.Anything, vendorID, model.StatusActive).Return(nil)
			},
		},
		{
			name: "approval of a non-vendor is rejected",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, vendorID).Return(&model.UserProfile{
					ID:     vendorID,
					Role:   model.RoleUser,
					Status: model.StatusPending,
				}, nil)
			},
			expectedError: errors.ErrVendorNotEligible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.ApproveVendor(context.Background(), vendorID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, model.StatusActive, user.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
