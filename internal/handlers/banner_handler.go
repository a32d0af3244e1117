package handlers

import (
	"errors"
	"log"

	"homestore/internal/repositories"
	"homestore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BannerHandler handles HTTP requests for storefront banners.
type BannerHandler struct {
	service  *services.BannerService
	userRepo repositories.UserRepository
	validate *validator.Validate
}

// NewBannerHandler creates a new BannerHandler. The user repository backs the
// admin check on the otherwise public listing route.
func NewBannerHandler(service *services.BannerService, userRepo repositories.UserRepository) *BannerHandler {
	return &BannerHandler{
		service:  service,
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the banner routes. The listing route takes the
// optional-auth middleware because ?active=all is admin-only.
func (h *BannerHandler) RegisterRoutes(router fiber.Router, optionalAuth, auth, admin fiber.Handler) {
	banners := router.Group("/banners")
	banners.Get("/", optionalAuth, h.HandleList)
	banners.Get("/:id", auth, admin, h.HandleGetByID)
	banners.Post("/", auth, admin, h.HandleCreate)
	banners.Put("/:id", auth, admin, h.HandleUpdate)
	banners.Delete("/:id", auth, admin, h.HandleDelete)
}

// HandleList returns active banners ordered by their sort key. With
// ?active=all an authenticated admin also gets the inactive ones.
func (h *BannerHandler) HandleList(c *fiber.Ctx) error {
	includeInactive := c.Query("active") == "all"
	if includeInactive {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		user, err := h.userRepo.GetByID(userID)
		if err != nil || !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
	}

	banners, err := h.service.List(includeInactive)
	if err != nil {
		log.Printf("Error listing banners: %v", err)
		return respondInternal(c, "Failed to list banners")
	}
	return c.JSON(fiber.Map{"banners": banners})
}

// HandleGetByID returns a single banner (admin only).
func (h *BannerHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	banner, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "Banner")
		}
		log.Printf("Error getting banner %s: %v", id, err)
		return respondInternal(c, "Failed to get banner")
	}
	return c.JSON(fiber.Map{"banner": banner})
}

// HandleCreate creates a new banner (admin only).
func (h *BannerHandler) HandleCreate(c *fiber.Ctx) error {
	var in services.BannerInput
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}

	banner, err := h.service.Create(in)
	if err != nil {
		log.Printf("Error creating banner: %v", err)
		return respondInternal(c, "Failed to create banner")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Banner created successfully",
		"banner":  banner,
	})
}

// HandleUpdate applies a partial update to a banner (admin only).
func (h *BannerHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var in services.BannerUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}

	banner, err := h.service.Update(id, in)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "Banner")
		}
		log.Printf("Error updating banner %s: %v", id, err)
		return respondInternal(c, "Failed to update banner")
	}

	return c.JSON(fiber.Map{
		"message": "Banner updated successfully",
		"banner":  banner,
	})
}

// HandleDelete removes a banner (admin only).
func (h *BannerHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "Banner")
		}
		log.Printf("Error deleting banner %s: %v", id, err)
		return respondInternal(c, "Failed to delete banner")
	}
	return c.JSON(fiber.Map{"message": "Banner deleted successfully"})
}
