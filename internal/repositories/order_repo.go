package repositories

import "homestore/internal/models"

// OrderRepository exposes the order aggregates consumed by the admin
// statistics dashboard. Orders are written by seed tooling only; there is no
// runtime order CRUD.
type OrderRepository interface {
	Create(order *models.Order) error
	Count() (int64, error)
	TotalRevenue() (float64, error)
}
