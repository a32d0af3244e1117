package models

import "time"

// Product represents a catalog item.
//
// Price is the listed price; Discount is a percentage in [0, 100] applied on
// top of it. The slug is derived from the name and is unique across products.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(150)" validate:"required,min=1,max=150"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(180)"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Discount    float64   `json:"discount" validate:"gte=0,lte=100"`
	Stock       int       `json:"stock" validate:"gte=0"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	ImageURLs   []string  `json:"imageUrls" gorm:"serializer:json;type:text"`
	Featured    bool      `json:"featured"`
	CategoryID  string    `json:"categoryId" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FinalPrice returns the price after the percent discount is applied.
func (p *Product) FinalPrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (100 - p.Discount) / 100
}
