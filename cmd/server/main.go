package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"luxpackers-admin/internal/adapters/http/middleware"
	"luxpackers-admin/internal/adapters/http/routes"
	"luxpackers-admin/internal/adapters/persistence/models"
	"luxpackers-admin/internal/config"
	"luxpackers-admin/internal/core/services"
	"luxpackers-admin/internal/pkg/session"

	"github.com/gofiber/fiber/v2"

	_ "luxpackers-admin/docs" // Swagger docs
)

// @title LuxPackers Admin API
// @version 1.0
// @description Travel agency admin console backend for LuxPackers staff.

// @contact.name API Support
// @contact.email support@luxpackers.com

// @host admin-api.luxpackers.com
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed master data (default admin account + countries)
	if err := config.SeedMasterData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed master data: %v", err)
	}

	// Session store: loads any persisted session so a restart does not
	// force re-login
	store := session.NewStore(session.NewGormPersister(db))

	// Start cron service (daily idle-session purge)
	cronService := services.NewCronService(store, cfg.Session.IdleTTLDays)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "LuxPackers Admin API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, store and cfg for dependency injection)
	routes.Setup(app, db, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
