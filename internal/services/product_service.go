package services

import (
	"log"

	"homestore/internal/models"
	"homestore/internal/repositories"
	"homestore/internal/slug"
	"homestore/pkg/events"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *events.Client
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case catalog events are not published.
func NewProductService(repo repositories.ProductRepository, mqClient *events.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// List returns one page of products matching the filter. Page and PageSize
// are normalized here; SortBy falls back to newest-first inside the
// repository.
func (s *ProductService) List(filter repositories.ProductFilter) ([]models.Product, Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	if filter.SortBy == "" {
		filter.SortBy = repositories.SortNewest
	}

	products, total, err := s.repo.List(filter)
	if err != nil {
		return nil, Pagination{}, err
	}
	return products, paginate(filter.Page, filter.PageSize, total), nil
}

// GetByID retrieves a single product.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetByCategoryID retrieves every product in a category.
func (s *ProductService) GetByCategoryID(categoryID string) ([]models.Product, error) {
	return s.repo.GetByCategoryID(categoryID)
}

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name        string   `json:"name" validate:"required,min=1,max=150"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Discount    float64  `json:"discount" validate:"gte=0,lte=100"`
	Stock       int      `json:"stock" validate:"gte=0"`
	ImageURL    string   `json:"imageUrl"`
	ImageURLs   []string `json:"imageUrls"`
	Featured    bool     `json:"featured"`
	CategoryID  string   `json:"categoryId" validate:"required,uuid"`
}

// Create persists a new product with a slug derived from its name. A slug
// collision surfaces from the repository as a duplicate error; there is no
// retry loop.
func (s *ProductService) Create(in ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Discount:    in.Discount,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		ImageURLs:   in.ImageURLs,
		Featured:    in.Featured,
		CategoryID:  in.CategoryID,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.publish(events.ProductCreated, product)
	return product, nil
}

// ProductUpdateInput carries a partial product update. Nil fields are left
// untouched.
type ProductUpdateInput struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=150"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Price       *float64  `json:"price" validate:"omitempty,gt=0"`
	Discount    *float64  `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	ImageURL    *string   `json:"imageUrl"`
	ImageURLs   *[]string `json:"imageUrls"`
	Featured    *bool     `json:"featured"`
	CategoryID  *string   `json:"categoryId" validate:"omitempty,uuid"`
}

// Update applies a partial update. The slug is re-derived only when the name
// actually changes.
func (s *ProductService) Update(id string, in ProductUpdateInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != product.Name {
		product.Name = *in.Name
		product.Slug = slug.Make(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Discount != nil {
		product.Discount = *in.Discount
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.ImageURLs != nil {
		product.ImageURLs = *in.ImageURLs
	}
	if in.Featured != nil {
		product.Featured = *in.Featured
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
		product.Category = nil
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.publish(events.ProductUpdated, product)
	return product, nil
}

// Delete removes a product by ID.
func (s *ProductService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(events.ProductDeleted, map[string]string{"id": id})
	return nil
}

// publish emits a catalog event when a client is configured. Failures are
// logged and never fail the request.
func (s *ProductService) publish(event string, data interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.Publish(event, data); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
