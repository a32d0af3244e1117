package repositories

import (
	"fmt"

	"homestore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBannerRepository is a GORM implementation of BannerRepository.
type GORMBannerRepository struct {
	db *gorm.DB
}

// NewGORMBannerRepository creates a new instance of GORMBannerRepository.
func NewGORMBannerRepository(db *gorm.DB) *GORMBannerRepository {
	return &GORMBannerRepository{db: db}
}

// GetAll retrieves banners ordered by their sort key.
func (r *GORMBannerRepository) GetAll(onlyActive bool) ([]models.Banner, error) {
	q := r.db.Order("sort_order ASC")
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var banners []models.Banner
	if err := q.Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get banners: %w", err)
	}
	return banners, nil
}

// GetByID retrieves a banner by its ID.
func (r *GORMBannerRepository) GetByID(id string) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.First(&banner, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("banner %s: %w", id, translate(err))
	}
	return &banner, nil
}

// Create inserts a new banner, assigning an ID when none is set.
func (r *GORMBannerRepository) Create(banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	if err := r.db.Create(banner).Error; err != nil {
		return fmt.Errorf("failed to create banner: %w", translate(err))
	}
	return nil
}

// Update saves all fields of an existing banner.
func (r *GORMBannerRepository) Update(banner *models.Banner) error {
	res := r.db.Save(banner)
	if res.Error != nil {
		return fmt.Errorf("failed to update banner: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner %s: %w", banner.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a banner by ID.
func (r *GORMBannerRepository) Delete(id string) error {
	res := r.db.Delete(&models.Banner{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner %s: %w", id, ErrNotFound)
	}
	return nil
}
