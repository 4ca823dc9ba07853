package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/snowonice/venue-api/docs"
	"github.com/snowonice/venue-api/internal/api/handler"
	"github.com/snowonice/venue-api/internal/api/middleware"
	"github.com/snowonice/venue-api/internal/core/domain"
	"github.com/snowonice/venue-api/internal/core/ports"
)

// Deps carries the wired services and stores the router mounts.
type Deps struct {
	AuthService    ports.AuthService
	RinkService    ports.RinkService
	CatalogService ports.CatalogService
	SalesService   ports.SalesService

	DB    *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("venue"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.AuthService)
	rinkHandler := handler.NewRinkHandler(deps.RinkService)
	productHandler := handler.NewProductHandler(deps.CatalogService)
	customerHandler := handler.NewCustomerHandler(deps.CatalogService)
	saleHandler := handler.NewSaleHandler(deps.SalesService)
	ticketHandler := handler.NewTicketHandler(deps.SalesService)
	reportHandler := handler.NewReportHandler(deps.SalesService)

	// --- Public routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?

	// --- Authenticated routes ---
	auth := middleware.Auth(deps.AuthService)

	v1 := e.Group("/v1", auth)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me)

	// Account directory (the service enforces the admin gate; no capability
	// guard on top).
	v1.GET("/users", userHandler.List)
	v1.POST("/users", userHandler.Create)
	v1.DELETE("/users/:id", userHandler.Delete)

	dashboard := v1.Group("", middleware.Guard(domain.CapDashboard))
	dashboard.GET("/dashboard", reportHandler.Dashboard)

	reports := v1.Group("", middleware.Guard(domain.CapReports))
	reports.GET("/reports", reportHandler.Reports)

	rink := v1.Group("/rink", middleware.Guard(domain.CapRinkManager))
	rink.GET("/customers", rinkHandler.List)
	rink.POST("/customers", rinkHandler.CheckIn)
	rink.GET("/customers/:number", rinkHandler.Get)
	rink.POST("/customers/:number/pause", rinkHandler.TogglePause)
	rink.DELETE("/customers/:number", rinkHandler.CheckOut)
	rink.POST("/pause-all", rinkHandler.TogglePauseAll)

	products := v1.Group("/products", middleware.Guard(domain.CapProducts))
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	customers := v1.Group("/customers", middleware.Guard(domain.CapCustomers))
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	sales := v1.Group("/sales", middleware.Guard(domain.CapSales))
	sales.GET("", saleHandler.List)
	sales.POST("", saleHandler.Create)

	tickets := v1.Group("/ticket-sales", middleware.Guard(domain.CapTicketSales))
	tickets.GET("", ticketHandler.List)
	tickets.POST("", ticketHandler.Create)
	tickets.DELETE("/:id", ticketHandler.Delete)

	return e
}
