package routes

import (
	"luxpackers-admin/internal/adapters/http/handlers"
	"luxpackers-admin/internal/adapters/http/middleware"
	"luxpackers-admin/internal/adapters/persistence/models"
	"luxpackers-admin/internal/adapters/persistence/repositories"
	"luxpackers-admin/internal/config"
	"luxpackers-admin/internal/core/services"
	"luxpackers-admin/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, store *session.Store, cfg *config.Config) {
	// Initialize repositories
	employeeRepo := repositories.NewEmployeeRepository(db)

	customerRepo := repositories.NewRecordRepository[models.Customer](db, "id", "")
	bookingRepo := repositories.NewRecordRepository[models.Booking](db, "booking_id", "")
	countryRepo := repositories.NewRecordRepository[models.Country](db, "id", "name ASC")
	packageRepo := repositories.NewRecordRepository[models.Package](db, "id", "")
	flightRepo := repositories.NewRecordRepository[models.Flight](db, "id", "flight_date ASC")
	accommodationRepo := repositories.NewRecordRepository[models.Accommodation](db, "id", "start_date ASC")
	saleRepo := repositories.NewRecordRepository[models.Sale](db, "id", "")
	applicationRepo := repositories.NewRecordRepository[models.InternshipApplication](db, "id", "created_at DESC")

	// Initialize services
	authService := services.NewAuthService(employeeRepo)
	dashboardService := services.NewDashboardService(db)

	customerService := services.NewRecordService(customerRepo, services.CustomerRequired)
	bookingService := services.NewRecordService(bookingRepo, services.BookingRequired)
	countryService := services.NewRecordService(countryRepo, services.CountryRequired)
	packageService := services.NewRecordService(packageRepo, services.PackageRequired)
	flightService := services.NewRecordService(flightRepo, services.FlightRequired)
	accommodationService := services.NewRecordService(accommodationRepo, services.AccommodationRequired)
	saleService := services.NewRecordService(saleRepo, services.SaleRequired)
	applicationService := services.NewRecordService[models.InternshipApplication](applicationRepo, nil)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, store, cfg)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	customerHandler := handlers.NewRecordHandler(customerService, "customer", "customers", nil)
	bookingHandler := handlers.NewRecordHandler(bookingService, "booking", "bookings",
		map[string]string{"customer_id": "customer_id"})
	countryHandler := handlers.NewRecordHandler(countryService, "country", "countries", nil)
	packageHandler := handlers.NewRecordHandler(packageService, "package", "packages",
		map[string]string{"country_id": "country_id"})
	flightHandler := handlers.NewRecordHandler(flightService, "flight", "flights",
		map[string]string{"booking_id": "booking_id"})
	accommodationHandler := handlers.NewRecordHandler(accommodationService, "accommodation", "accommodations",
		map[string]string{"booking_id": "booking_id"})
	saleHandler := handlers.NewRecordHandler(saleService, "sale", "sales",
		map[string]string{"status": "status"})
	applicationHandler := handlers.NewRecordHandler(applicationService, "application", "applications", nil)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, stricter rate limit)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)

	// Protected routes: valid token + live session required
	protected := apiV1.Group("", middleware.AuthMiddleware(cfg, store))
	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)

	registerRecordRoutes(protected, "/customers", customerHandler)
	registerRecordRoutes(protected, "/bookings", bookingHandler)
	registerRecordRoutes(protected, "/countries", countryHandler)
	registerRecordRoutes(protected, "/packages", packageHandler)
	registerRecordRoutes(protected, "/flights", flightHandler)
	registerRecordRoutes(protected, "/accommodations", accommodationHandler)
	registerRecordRoutes(protected, "/sales", saleHandler)

	// Internship applications are submitted from the public site; the
	// console only reviews and removes them.
	applications := protected.Group("/internship-applications")
	applications.Get("/", applicationHandler.List)
	applications.Get("/:id", applicationHandler.Get)
	applications.Delete("/:id", applicationHandler.Delete)

	// Detail routes parameterized by foreign key
	protected.Get("/customers/:id/bookings", bookingHandler.ListByParent("customer_id"))
	protected.Get("/bookings/:id/flights", flightHandler.ListByParent("booking_id"))
	protected.Get("/bookings/:id/accommodations", accommodationHandler.ListByParent("booking_id"))
	protected.Get("/countries/:id/packages", packageHandler.ListByParent("country_id"))
}

// registerRecordRoutes mounts the full CRUD + edit-state surface of one
// entity type
func registerRecordRoutes[T any](router fiber.Router, path string, h *handlers.RecordHandler[T]) {
	group := router.Group(path)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)

	// Single-row edit sub-state
	group.Post("/:id/edit", h.StartEdit)
	group.Put("/:id/edit", h.UpdateScratch)
	group.Post("/:id/edit/save", h.SaveEdit)
	group.Delete("/:id/edit", h.CancelEdit)
}
