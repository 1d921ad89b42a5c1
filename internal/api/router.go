package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ahmadjutt29/isp-billing-system/internal/api/handler"
	"github.com/ahmadjutt29/isp-billing-system/internal/api/middleware"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/invoice"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/service"
	"github.com/ahmadjutt29/isp-billing-system/internal/infrastructure/db/postgres"
	"github.com/ahmadjutt29/isp-billing-system/internal/infrastructure/db/redis"
)

// Options carries the external dependencies and settings the router needs.
type Options struct {
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	InvoiceIssuer string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *goredis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("billing"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	feeRepo := postgres.NewFeeRepository(db)
	payRequestRepo := postgres.NewPayRequestRepository(db)
	reportCache := redis.NewReportCache(rdb)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.AdminUsername, opts.AdminPassword, 24*time.Hour, log)
	userService := service.NewUserService(userRepo, log)
	feeService := service.NewFeeService(feeRepo, userRepo, reportCache, log)
	payRequestService := service.NewPayRequestService(payRequestRepo, feeRepo, reportCache, log)
	renderer := invoice.NewRenderer(opts.InvoiceIssuer)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	feeHandler := handler.NewFeeHandler(feeService)
	payRequestHandler := handler.NewPayRequestHandler(payRequestService)
	reportHandler := handler.NewReportHandler(feeService)
	invoiceHandler := handler.NewInvoiceHandler(feeService, userService, renderer)

	authMW := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/users/seed-admin", authHandler.SeedAdmin)

	// --- User management (admin only) ---
	users := e.Group("/users", authMW, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Fees ---
	fees := e.Group("/fees", authMW)
	fees.GET("", feeHandler.List, adminOnly)
	fees.POST("", feeHandler.Create, adminOnly)
	fees.GET("/my-fees", feeHandler.MyFees)
	fees.GET("/:id", feeHandler.Get)
	fees.PUT("/:id", feeHandler.Update, adminOnly)
	fees.DELETE("/:id", feeHandler.Delete, adminOnly)
	fees.PUT("/:id/pay", feeHandler.Pay)
	fees.POST("/:id/pay-request", payRequestHandler.Submit)
	fees.GET("/:id/invoice", invoiceHandler.Get)

	// --- Reports (admin only) ---
	reports := e.Group("/reports", authMW, adminOnly)
	reports.GET("/income", reportHandler.Income)
	reports.GET("/income/monthly", reportHandler.Monthly)

	// --- Payment requests (admin only) ---
	payRequests := e.Group("/payrequests", authMW, adminOnly)
	payRequests.GET("", payRequestHandler.List)
	payRequests.POST("/:id/approve", payRequestHandler.Approve)

	// --- Health probes + metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
