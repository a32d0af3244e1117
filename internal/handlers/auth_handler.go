package handlers

import (
	"errors"
	"log"

	"homestore/internal/repositories"
	"homestore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication and the caller's own
// profile.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/me", auth, h.HandleMe)
	authRoutes.Put("/profile", auth, h.HandleUpdateProfile)
}

// HandleRegister creates a customer account and logs it in immediately.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}

	user, token, err := h.authService.Register(in)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "User with this email already exists",
			})
		}
		log.Printf("Error registering user: %v", err)
		return respondInternal(c, "Failed to register user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		// A generic message regardless of whether the email exists.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// HandleMe returns the account behind the presented token.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "User")
		}
		log.Printf("Error loading profile for user %s: %v", userID, err)
		return respondInternal(c, "Failed to get user profile")
	}

	return c.JSON(fiber.Map{"user": user})
}

// HandleUpdateProfile applies a partial update to the caller's own account.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var in services.ProfileUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c, err)
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}

	user, err := h.authService.UpdateProfile(userID, in)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondNotFound(c, "User")
		}
		log.Printf("Error updating profile for user %s: %v", userID, err)
		return respondInternal(c, "Failed to update profile")
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
