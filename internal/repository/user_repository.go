package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantconfirm/internal/model"
)

// UserRepository defines user profile persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.UserProfile) error
	Update(ctx context.Context, user *model.UserProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*model.UserProfile, error)
	List(ctx context.Context) ([]model.UserProfile, error)
	ListActiveVendors(ctx context.Context) ([]model.UserProfile, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.UserStatus) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user profile.
func (r *userRepository) Create(ctx context.Context, user *model.UserProfile) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update updates an existing user profile.
func (r *userRepository) Update(ctx context.Context, user *model.UserProfile) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	var user model.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	var user model.UserProfile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List lists all users, most recently created first. The store guarantees
// no default order, so the sort is always explicit.
func (r *userRepository) List(ctx context.Context) ([]model.UserProfile, error) {
	var users []model.UserProfile
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListActiveVendors lists vendors eligible for enquiry assignment.
func (r *userRepository) ListActiveVendors(ctx context.Context) ([]model.UserProfile, error) {
	var vendors []model.UserProfile
	if err := r.db.WithContext(ctx).
		Where("role = ? AND status = ?", model.RoleVendor, model.StatusActive).
		Order("username ASC").
		Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// UpdateStatus updates only the status column of a user.
func (r *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.UserStatus) error {
	return r.db.WithContext(ctx).Model(&model.UserProfile{}).
		Where("id = ?", id).
		Update("status", status).Error
}
