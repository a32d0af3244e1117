package repositories

import "homestore/internal/models"

// BannerRepository defines the interface for banner data access.
type BannerRepository interface {
	// GetAll returns banners sorted by their sort key. When onlyActive is
	// true, inactive banners are excluded.
	GetAll(onlyActive bool) ([]models.Banner, error)
	GetByID(id string) (*models.Banner, error)
	Create(banner *models.Banner) error
	Update(banner *models.Banner) error
	Delete(id string) error
}
