package services

import (
	"errors"

	"homestore/internal/models"
	"homestore/internal/repositories"
	"homestore/internal/slug"
)

// ErrCategoryInUse is returned when deleting a category that products still
// reference.
var ErrCategoryInUse = errors.New("category still has products")

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo        repositories.CategoryRepository
	productRepo repositories.ProductRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CategoryService {
	return &CategoryService{
		repo:        repo,
		productRepo: productRepo,
	}
}

// List retrieves all categories sorted by name.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetByID retrieves a single category.
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	ImageURL    string `json:"imageUrl"`
}

// Create persists a new category with a slug derived from its name.
func (s *CategoryService) Create(in CategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// CategoryUpdateInput carries a partial category update.
type CategoryUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string `json:"imageUrl"`
}

// Update applies a partial update, re-deriving the slug only when the name
// changes.
func (s *CategoryService) Update(id string, in CategoryUpdateInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != category.Name {
		category.Name = *in.Name
		category.Slug = slug.Make(*in.Name)
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Deletion is blocked while any product still
// references it.
func (s *CategoryService) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	n, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryInUse
	}
	return s.repo.Delete(id)
}
