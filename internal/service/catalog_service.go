package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantconfirm/internal/errors"
	"bantconfirm/internal/model"
	"bantconfirm/internal/repository"
)

// CatalogService handles products and categories. Editing is admin tooling;
// vendors are referenced by id but do not self-serve product edits.
type CatalogService interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListProducts lists products name-ascending with optional filtering.
func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.List(ctx, filter)
}

// GetProduct finds a product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// CreateProduct validates and creates a product.
func (s *catalogService) CreateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.Create(ctx, product)
}

// UpdateProduct validates and updates a product.
func (s *catalogService) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.Update(ctx, product)
}

// DeleteProduct removes a product.
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

// ListCategories lists categories name-ascending.
func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory validates and creates a category. A nameless category is
// rejected before any round-trip.
func (s *catalogService) CreateCategory(ctx context.Context, category *model.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return errors.ErrNameRequired
	}
	return s.categoryRepo.Create(ctx, category)
}

// UpdateCategory validates and updates a category.
func (s *catalogService) UpdateCategory(ctx context.Context, category *model.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return errors.ErrNameRequired
	}
	return s.categoryRepo.Update(ctx, category)
}

// DeleteCategory removes a category.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, id)
}

func validateProduct(product *model.Product) error {
	if strings.TrimSpace(product.Name) == "" || strings.TrimSpace(product.Category) == "" {
		return errors.ErrNameRequired
	}
	if product.Rating < 0 || product.Rating > 5 {
		return errors.ErrInvalidRating
	}
	return nil
}
