package handlers

import (
	"errors"
	"log"

	"homestore/internal/repositories"
	"homestore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads are public; writes are
// admin-gated.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Get("/category/:categoryId", h.HandleListByCategory)
	products.Get("/:id", h.HandleGetByID)
	products.Post("/", auth, admin, h.HandleCreate)
	products.Put("/:id", auth, admin, h.HandleUpdate)
	products.Delete("/:id", auth, admin, h.HandleDelete)
}

// HandleList returns one page of products. Query parameters: page, pageSize,
// category (slug), featured, search, sortBy.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)
	if page < 1 || pageSize < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid query parameters",
			"details": "page and pageSize must be positive integers",
		})
	}

	filter := repositories.ProductFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
		SortBy:       c.Query("sortBy"),
		Page:         page,
		PageSize:     pageSize,
	}
	if featured := c.Query("featured"); featured == "true" {
		t := true
		filter.Featured = &t
	}

	products, pagination, err := h.service.List(filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return respondInternal(c, "Failed to list products")
	}

	return c.JSON(fiber.Map{
		"products":   products,
		"pagination": pagination,
	})
}

// HandleGetByID returns a single product with its category.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "Product")
		}
		log.Printf("Error getting product %s: %v", id, err)
		return respondInternal(c, "Failed to get product")
	}
	return c.JSON(fiber.Map{"product": product})
}

// HandleListByCategory returns every product in a category.
func (h *ProductHandler) HandleListByCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")
	products, err := h.service.GetByCategoryID(categoryID)
	if err != nil {
		log.Printf("Error getting products for category %s: %v", categoryID, err)
		return respondInternal(c, "Failed to get products")
	}
	return c.JSON(fiber.Map{"products": products})
}

// HandleCreate creates a new product (admin only).
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}

	product, err := h.service.Create(in)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A product with this name already exists, leading to a duplicate slug",
			})
		}
		log.Printf("Error creating product: %v", err)
		return respondInternal(c, "Failed to create product")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// HandleUpdate applies a partial update to a product (admin only).
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var in services.ProductUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}

	product, err := h.service.Update(id, in)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "Product")
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A product with this name already exists, leading to a duplicate slug",
			})
		}
		log.Printf("Error updating product %s: %v", id, err)
		return respondInternal(c, "Failed to update product")
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDelete removes a product (admin only).
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "Product")
		}
		log.Printf("Error deleting product %s: %v", id, err)
		return respondInternal(c, "Failed to delete product")
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
