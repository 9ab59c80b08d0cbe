package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barpoint/barpoint-api/internal/config"
	"github.com/barpoint/barpoint-api/internal/presentation/http/handler"
	"github.com/barpoint/barpoint-api/internal/presentation/http/middleware"
	"github.com/barpoint/barpoint-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Company   *handler.CompanyHandler
	Product   *handler.ProductHandler
	Sale      *handler.SaleHandler
	Purchase  *handler.PurchaseHandler
	Supplier  *handler.SupplierHandler
	Account   *handler.AccountHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Logger     *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check and metrics endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", middleware.MetricsHandler())

	api := router.Group("/api")
	{
		// Public routes (no authentication required)
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
		}

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-tenant rate limiter; cleanup cadence comes from the defaults
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/auth/me", h.Auth.Me)

	// Dashboard
	protected.GET("/dashboard/stats", h.Dashboard.Stats)

	// Company self-service
	protected.PUT("/companies/:id", h.Company.Update)

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	// Sales
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.PATCH("/:id/status", h.Sale.UpdateStatus)
	}

	// Purchases
	purchases := protected.Group("/purchases")
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.PATCH("/:id/status", h.Purchase.UpdateStatus)
	}

	// Suppliers
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	// Financial accounts
	receivables := protected.Group("/accounts-receivable")
	{
		receivables.GET("", h.Account.ListReceivables)
		receivables.POST("", h.Account.CreateReceivable)
		receivables.PATCH("/:id/status", h.Account.UpdateReceivableStatus)
	}
	payables := protected.Group("/accounts-payable")
	{
		payables.GET("", h.Account.ListPayables)
		payables.POST("", h.Account.CreatePayable)
		payables.PATCH("/:id/status", h.Account.UpdatePayableStatus)
	}

	// System administration
	system := protected.Group("/system")
	system.Use(middleware.RequireSystemAdmin())
	{
		system.GET("/companies", h.Company.ListCompanies)
		system.POST("/companies", h.Company.CreateCompany)
		system.PATCH("/companies/:id/status", h.Company.UpdateCompanyStatus)
		system.GET("/companies/:id/users", h.Company.ListCompanyUsers)
		system.POST("/companies/:id/users", h.Company.CreateCompanyUser)
		system.PATCH("/companies/:id/users/:userId/status", h.Company.UpdateCompanyUserStatus)
		system.DELETE("/companies/:id/users/:userId", h.Company.DeleteCompanyUser)
	}
}
