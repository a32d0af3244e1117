package services

import (
	"homestore/internal/models"
	"homestore/internal/repositories"
)

// BannerService handles business logic related to storefront banners.
type BannerService struct {
	repo repositories.BannerRepository
}

// NewBannerService creates a new BannerService.
func NewBannerService(repo repositories.BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// List retrieves banners sorted by their sort key. Public callers get active
// banners only; admins may ask for everything.
func (s *BannerService) List(includeInactive bool) ([]models.Banner, error) {
	return s.repo.GetAll(!includeInactive)
}

// GetByID retrieves a single banner.
func (s *BannerService) GetByID(id string) (*models.Banner, error) {
	return s.repo.GetByID(id)
}

// BannerInput is the payload for creating a banner. Active defaults to true
// when omitted.
type BannerInput struct {
	Title    string `json:"title" validate:"required,min=1,max=150"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl" validate:"required"`
	Link     string `json:"link"`
	Order    int    `json:"order"`
	Active   *bool  `json:"active"`
}

// Create persists a new banner.
func (s *BannerService) Create(in BannerInput) (*models.Banner, error) {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	banner := &models.Banner{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		ImageURL: in.ImageURL,
		Link:     in.Link,
		Order:    in.Order,
		Active:   active,
	}
	if err := s.repo.Create(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// BannerUpdateInput carries a partial banner update.
type BannerUpdateInput struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=150"`
	Subtitle *string `json:"subtitle"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,min=1"`
	Link     *string `json:"link"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}

// Update applies a partial update to a banner.
func (s *BannerService) Update(id string, in BannerUpdateInput) (*models.Banner, error) {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		banner.Title = *in.Title
	}
	if in.Subtitle != nil {
		banner.Subtitle = *in.Subtitle
	}
	if in.ImageURL != nil {
		banner.ImageURL = *in.ImageURL
	}
	if in.Link != nil {
		banner.Link = *in.Link
	}
	if in.Order != nil {
		banner.Order = *in.Order
	}
	if in.Active != nil {
		banner.Active = *in.Active
	}
	if err := s.repo.Update(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Delete removes a banner by ID.
func (s *BannerService) Delete(id string) error {
	return s.repo.Delete(id)
}
