package handlers

import (
	"errors"
	"log"

	"homestore/internal/repositories"
	"homestore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for product categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes. Reads are public; writes are
// admin-gated.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleList)
	categories.Get("/:id", h.HandleGetByID)
	categories.Post("/", auth, admin, h.HandleCreate)
	categories.Put("/:id", auth, admin, h.HandleUpdate)
	categories.Delete("/:id", auth, admin, h.HandleDelete)
}

// HandleList returns every category sorted by name.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return respondInternal(c, "Failed to list categories")
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// HandleGetByID returns a single category.
func (h *CategoryHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	category, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "Category")
		}
		log.Printf("Error getting category %s: %v", id, err)
		return respondInternal(c, "Failed to get category")
	}
	return c.JSON(fiber.Map{"category": category})
}

// HandleCreate creates a new category (admin only).
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var in services.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}

	category, err := h.service.Create(in)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A category with this name already exists",
			})
		}
		log.Printf("Error creating category: %v", err)
		return respondInternal(c, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Category created successfully",
		"category": category,
	})
}

// HandleUpdate applies a partial update to a category (admin only).
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var in services.CategoryUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}

	category, err := h.service.Update(id, in)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "Category")
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A category with this name already exists",
			})
		}
		log.Printf("Error updating category %s: %v", id, err)
		return respondInternal(c, "Failed to update category")
	}

	return c.JSON(fiber.Map{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// HandleDelete removes a category (admin only). Deletion is refused while any
// product still references the category.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "Category")
		}
		if errors.Is(err, services.ErrCategoryInUse) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Category still has products and cannot be deleted",
			})
		}
		log.Printf("Error deleting category %s: %v", id, err)
		return respondInternal(c, "Failed to delete category")
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
