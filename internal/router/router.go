package router

import (
	"github.com/gin-gonic/gin"

	"billbook/internal/handler"
	"billbook/internal/middleware"
	"billbook/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	vendorH *handler.VendorHandler,
	productH *handler.ProductHandler,
	billH *handler.BillHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Vendor routes
	vendors := protected.Group("/vendors")
	vendors.POST("", vendorH.Create)
	vendors.GET("", vendorH.List)
	vendors.GET("/:id", vendorH.GetByID)
	vendors.PUT("/:id", vendorH.Update)
	vendors.DELETE("/:id", vendorH.Delete)

	// Product routes
	products := protected.Group("/products")
	products.POST("", productH.Create)
	products.GET("", productH.List)
	products.GET("/:id", productH.GetByID)
	products.PUT("/:id", productH.Update)
	products.DELETE("/:id", productH.Delete)

	// Bill routes - no update: bills are immutable once created
	bills := protected.Group("/bills")
	bills.POST("", billH.Create)
	bills.GET("", billH.List)
	bills.GET("/export", billH.Export)
	bills.GET("/:id", billH.GetByID)
	bills.GET("/:id/html", billH.HTML)
	bills.GET("/:id/pdf", billH.PDF)
	bills.POST("/:id/email", billH.Email)

	return r
}
