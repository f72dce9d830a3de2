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
	"bantconfirm/internal/repository"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	tests := []struct {
		name          string
		product       model.Product
		expectedError error
	}{
		{
			name: "valid product",
			product: model.Product{
				Name:     "Cloud Storage Pro",
				Category: "Cloud Storage",
				Pricing:  "₹50/TB",
				Rating:   4.2,
			},
		},
		{
			name: "missing name",
			product: model.Product{
				Category: "Cloud Storage",
			},
			expectedError: errors.ErrNameRequired,
		},
		{
			name: "missing category",
			product: model.Product{
				Name: "Cloud Storage Pro",
			},
			expectedError: errors.ErrNameRequired,
		},
		{
			name: "rating above range",
			product: model.Product{
				Name:     "Cloud Storage Pro",
				Category: "Cloud Storage",
				Rating:   5.1,
			},
			expectedError: errors.ErrInvalidRating,
		},
		{
			name: "negative rating",
			product: model.Product{
				Name:     "Cloud Storage Pro",
				Category: "Cloud Storage",
				Rating:   -1,
			},
			expectedError: errors.ErrInvalidRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProducts := new(MockProductRepository)
			mockCategories := new(MockCategoryRepository)
			if tt.expectedError == nil {
				mockProducts.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
			}

			svc := NewCatalogService(mockProducts, mockCategories)

			err := svc.CreateProduct(context.Background(), &tt.product)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockProducts.AssertExpectations(t)
		})
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	id := uuid.New()
	mockProducts.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCatalogService(mockProducts, mockCategories)

	product, err := svc.GetProduct(context.Background(), id)

	assert.Nil(t, product)
	assert.Equal(t, errors.ErrProductNotFound, err)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := NewCatalogService(mockProducts, mockCategories)

	err := svc.CreateCategory(context.Background(), &model.Category{Name: "  "})
	assert.Equal(t, errors.ErrNameRequired, err)

	mockCategories.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
	err = svc.CreateCategory(context.Background(), &model.Category{Name: "Cloud Storage", Icon: "☁️"})
	assert.NoError(t, err)
	mockCategories.AssertExpectations(t)
}
