package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	amqp "github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskbook/internal/handlers"
	"taskbook/internal/middleware"
	"taskbook/internal/models"
	"taskbook/internal/repositories"
	"taskbook/internal/services"
	"taskbook/internal/views"
	"taskbook/pkg/events"
)

// NewApp wires configuration, database, repositories, services, handlers
// and routes into a ready-to-listen Fiber app. The returned events client is
// nil when messaging is disabled; the caller owns closing it on shutdown.
func NewApp() (*fiber.App, *events.Client, error) {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "taskbook.db")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("RABBITMQ_URL", "") // Empty disables event publishing
	viper.AutomaticEnv()                 // Load environment variables

	// --- Initialize Database (GORM) ---
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return nil, nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *events.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = events.NewClient(events.Config{URL: mqURL})
		if err != nil {
			// The app works without the broker; events are just not published.
			log.Printf("Warning: failed to initialize RabbitMQ client: %v", err)
			mqClient = nil
		}
	}
	if mqClient != nil {
		err := mqClient.ConsumeActivityEvents(func(msg amqp.Delivery) error {
			log.Printf("Activity event received: %s", msg.Body)
			return nil
		})
		if err != nil {
			log.Printf("Warning: failed to start activity event consumer: %v", err)
		}
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	taskRepo := repositories.NewGORMTaskRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, mqClient, viper.GetString("JWT_SECRET"))
	userService := services.NewUserService(userRepo, mqClient)
	taskService := services.NewTaskService(taskRepo, mqClient)

	// --- Initialize Handlers ---
	sessionHandler := handlers.NewSessionHandler(authService)
	userHandler := handlers.NewUserHandler(authService, userService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		Views: views.New(),
	})

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(middleware.CurrentUser(authService, userRepo))

	requireLogin := middleware.LoginRequired()

	// --- Routes ---
	app.Get("/", requireLogin, func(c *fiber.Ctx) error {
		return c.Redirect("/tasks", fiber.StatusFound)
	})
	sessionHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app, requireLogin)
	taskHandler.RegisterRoutes(app, requireLogin)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, mqClient, nil
}

// openDatabase opens a GORM connection for the configured driver.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}
