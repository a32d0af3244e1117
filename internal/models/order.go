package models

import "time"

// Order statuses.
const (
	OrderPending   = "PENDING"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// Order is a customer order header. Orders are written by seed/import tooling
// and read by the admin statistics aggregation; there are no runtime order
// endpoints.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string      `json:"userId" gorm:"type:varchar(36);index"`
	Status      string      `json:"status" gorm:"type:varchar(20)"`
	TotalAmount float64     `json:"totalAmount"`
	FinalAmount float64     `json:"finalAmount"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderItem is a single line of an order, capturing the price and discount at
// the time the order was placed.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"orderId" gorm:"type:varchar(36);index"`
	ProductID string  `json:"productId" gorm:"type:varchar(36);index"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
	Subtotal  float64 `json:"subtotal"`
}
