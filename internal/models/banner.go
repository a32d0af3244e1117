package models

import "time"

// Banner is an admin-managed content slide shown on the storefront.
// Order is the sort key for the carousel; inactive banners are hidden from
// public listings.
type Banner struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title     string    `json:"title" gorm:"type:varchar(150)" validate:"required,min=1,max=150"`
	Subtitle  string    `json:"subtitle,omitempty"`
	ImageURL  string    `json:"imageUrl" validate:"required"`
	Link      string    `json:"link,omitempty"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
