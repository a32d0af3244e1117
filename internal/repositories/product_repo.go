package repositories

import "homestore/internal/models"

// ProductFilter narrows and orders a product listing. Zero values leave the
// corresponding filter unapplied. Page and PageSize must be positive; the
// service layer normalizes them before they reach the repository.
type ProductFilter struct {
	CategorySlug string
	CategoryID   string
	Featured     *bool
	Search       string
	SortBy       string
	Page         int
	PageSize     int
}

// Sort keys accepted by ProductFilter.SortBy. Anything else falls back to
// SortNewest.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	GetByCategoryID(categoryID string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	Count() (int64, error)
	CountByCategory(categoryID string) (int64, error)
}
