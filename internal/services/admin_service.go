package services

import (
	"context"

	"homestore/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// Statistics is the admin dashboard snapshot. Each figure comes from an
// independent query; the snapshot is not transactionally consistent across
// them, which is acceptable for a dashboard.
type Statistics struct {
	Users      int64   `json:"users"`
	Products   int64   `json:"products"`
	Categories int64   `json:"categories"`
	Orders     int64   `json:"orders"`
	Revenue    float64 `json:"revenue"`
}

// AdminService aggregates read-only statistics for the admin dashboard.
type AdminService struct {
	userRepo     repositories.UserRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	orderRepo    repositories.OrderRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	orderRepo repositories.OrderRepository,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
	}
}

// Statistics runs the five aggregate queries in parallel and returns the
// combined snapshot. The first failing query aborts the whole call.
func (s *AdminService) Statistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.userRepo.Count()
		stats.Users = n
		return err
	})
	g.Go(func() error {
		n, err := s.productRepo.Count()
		stats.Products = n
		return err
	})
	g.Go(func() error {
		n, err := s.categoryRepo.Count()
		stats.Categories = n
		return err
	})
	g.Go(func() error {
		n, err := s.orderRepo.Count()
		stats.Orders = n
		return err
	})
	g.Go(func() error {
		sum, err := s.orderRepo.TotalRevenue()
		stats.Revenue = sum
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
