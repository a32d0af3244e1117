package services

import (
	"errors"

	"homestore/internal/models"
	"homestore/internal/repositories"
)

// Guards on administrative self-modification.
var (
	ErrOwnAccountDelete = errors.New("cannot delete your own account")
	ErrOwnRoleChange    = errors.New("cannot change your own role")
)

// UserService handles administrative user management.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List retrieves every user, newest first.
func (s *UserService) List() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetByID retrieves a single user.
func (s *UserService) GetByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UserUpdateInput carries a partial administrative user update.
type UserUpdateInput struct {
	Name      *string `json:"name" validate:"omitempty,min=3,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
	Address   *string `json:"address" validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatarUrl"`
	Role      *string `json:"role" validate:"omitempty,oneof=ADMIN CUSTOMER"`
}

// Update applies a partial update to a user. actorID identifies the admin
// performing the change; an admin may not change their own role.
func (s *UserService) Update(id, actorID string, in UserUpdateInput) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil && id == actorID && *in.Role != user.Role {
		return nil, ErrOwnRoleChange
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. An admin may not delete their own account.
func (s *UserService) Delete(id, actorID string) error {
	if id == actorID {
		return ErrOwnAccountDelete
	}
	return s.repo.Delete(id)
}
