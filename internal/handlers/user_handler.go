package handlers

import (
	"errors"
	"log"

	"homestore/internal/repositories"
	"homestore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles administrative user management. Every route is
// admin-gated.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user management routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	users := router.Group("/users", auth, admin)
	users.Get("/", h.HandleList)
	users.Get("/:id", h.HandleGetByID)
	users.Put("/:id", h.HandleUpdate)
	users.Delete("/:id", h.HandleDelete)
}

// HandleList returns every user, newest first.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return respondInternal(c, "Failed to list users")
	}
	return c.JSON(fiber.Map{"users": users})
}

// HandleGetByID returns a single user.
func (h *UserHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "User")
		}
		log.Printf("Error getting user %s: %v", id, err)
		return respondInternal(c, "Failed to get user")
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleUpdate applies a partial update to a user. Admins cannot change their
// own role.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	actorID, _ := c.Locals("user_id").(string)

	var in services.UserUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}

	user, err := h.service.Update(id, actorID, in)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "User")
		}
		if errors.Is(err, services.ErrOwnRoleChange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "You cannot change your own role",
			})
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "User with this email already exists",
			})
		}
		log.Printf("Error updating user %s: %v", id, err)
		return respondInternal(c, "Failed to update user")
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    user,
	})
}

// HandleDelete removes a user. Admins cannot delete their own account.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	actorID, _ := c.Locals("user_id").(string)

	if err := h.service.Delete(id, actorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "User")
		}
		if errors.Is(err, services.ErrOwnAccountDelete) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "You cannot delete your own account",
			})
		}
		log.Printf("Error deleting user %s: %v", id, err)
		return respondInternal(c, "Failed to delete user")
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
