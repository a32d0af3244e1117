package handlers

import (
	"log"

	"homestore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes registers the admin routes.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	adminRoutes := router.Group("/admin", auth, admin)
	adminRoutes.Get("/statistics", h.HandleStatistics)
}

// HandleStatistics returns the aggregate dashboard counters.
func (h *AdminHandler) HandleStatistics(c *fiber.Ctx) error {
	stats, err := h.service.Statistics(c.Context())
	if err != nil {
		log.Printf("Error computing statistics: %v", err)
		return respondInternal(c, "Failed to compute statistics")
	}
	return c.JSON(fiber.Map{"statistics": stats})
}
