package models

import "time"

// Roles a user account can hold.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// User represents an account in the store.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(32)"`
	Address   string    `json:"address,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      string    `json:"role" gorm:"type:varchar(16);default:CUSTOMER" validate:"omitempty,oneof=ADMIN CUSTOMER"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
