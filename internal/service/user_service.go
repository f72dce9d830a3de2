package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantconfirm/internal/errors"
	"bantconfirm/internal/model"
	"bantconfirm/internal/repository"
)

// UserService handles admin user management.
type UserService interface {
	List(ctx context.Context) ([]model.UserProfile, error)
	Get(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.UserStatus) (*model.UserProfile, error)
	ApproveVendor(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// List lists all users, most recently created first.
func (s *userService) List(ctx context.Context) ([]model.UserProfile, error) {
	return s.userRepo.List(ctx)
}

// Get finds a user by ID.
func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// SetStatus changes a user's status. Suspending an admin is rejected before
// any write reaches the store; the guard lives here, not in the UI.
func (s *userService) SetStatus(ctx context.Context, id uuid.UUID, status model.UserStatus) (*model.UserProfile, error) {
	if !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role == model.RoleAdmin && status == model.StatusSuspended {
		return nil, errors.ErrAdminImmutable
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	user.Status = status
	return user, nil
}

// ApproveVendor transitions a pending vendor to active, making it eligible
// for enquiry assignment.
func (s *userService) ApproveVendor(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleVendor {
		return nil, errors.ErrVendorNotEligible
	}
	return s.SetStatus(ctx, id, model.StatusActive)
}
