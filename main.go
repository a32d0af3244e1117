package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"homestore/internal/handlers"
	"homestore/internal/middleware"
	"homestore/internal/models"
	"homestore/internal/repositories"
	"homestore/internal/services"
	"homestore/pkg/events"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func loadConfig() {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("JWT_TTL_HOURS", 168)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()
}

// openDatabase connects to the configured database. An empty DSN falls back
// to a local SQLite file, which keeps development setup at zero.
func openDatabase(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	switch {
	case dsn == "":
		return gorm.Open(sqlite.Open("homestore.db"), cfg)
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"), strings.Contains(dsn, ":memory:"):
		return gorm.Open(sqlite.Open(dsn), cfg)
	default:
		return gorm.Open(postgres.Open(dsn), cfg)
	}
}

// NewApp wires the repositories, services, handlers and middleware into a
// ready-to-listen Fiber app. The returned events client is nil when no
// RabbitMQ URL is configured; the caller owns closing it.
func NewApp() (*fiber.App, *events.Client, error) {
	loadConfig()

	db, err := openDatabase(viper.GetString("DATABASE_DSN"))
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Banner{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, nil, err
	}

	var mqClient *events.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = events.NewClient(events.Config{URL: url})
		if err != nil {
			return nil, nil, err
		}
	}

	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	bannerRepo := repositories.NewGORMBannerRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	tokenTTL := time.Duration(viper.GetInt("JWT_TTL_HOURS")) * time.Hour
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"), tokenTTL)
	productService := services.NewProductService(productRepo, mqClient)
	categoryService := services.NewCategoryService(categoryRepo, productRepo)
	bannerService := services.NewBannerService(bannerRepo)
	userService := services.NewUserService(userRepo)
	adminService := services.NewAdminService(userRepo, productRepo, categoryRepo, orderRepo)

	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	bannerHandler := handlers.NewBannerHandler(bannerService, userRepo)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService)

	app := fiber.New()
	app.Use(logger.New())

	auth := middleware.AuthRequired(authService)
	optionalAuth := middleware.OptionalAuth(authService)
	admin := middleware.AdminRequired(userRepo)

	api := app.Group("/api")
	authHandler.RegisterRoutes(api, auth)
	productHandler.RegisterRoutes(api, auth, admin)
	categoryHandler.RegisterRoutes(api, auth, admin)
	bannerHandler.RegisterRoutes(api, optionalAuth, auth, admin)
	userHandler.RegisterRoutes(api, auth, admin)
	adminHandler.RegisterRoutes(api, auth, admin)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, mqClient, nil
}

func main() {
	app, mqClient, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	if mqClient != nil {
		defer mqClient.Close()

		// Log-only consumer so a single-node deployment still drains the
		// queue it publishes to.
		if err := mqClient.Consume(func(msg amqp.Delivery) error {
			log.Printf("Catalog event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}); err != nil {
			log.Printf("Failed to start catalog event consumer: %v", err)
		}
	}

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
