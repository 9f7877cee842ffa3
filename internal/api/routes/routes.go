package routes

import (
	"log"

	"invoice-dashboard/internal/api/handlers"
	"invoice-dashboard/internal/api/middleware"
	"invoice-dashboard/internal/app"
	"invoice-dashboard/internal/cache"
	"invoice-dashboard/internal/services"
	"invoice-dashboard/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Build repositories, cache and services ---
	invoiceRepo := postgres.NewInvoiceRepo(app.DBPool)
	customerRepo := postgres.NewCustomerRepo(app.DBPool)
	userRepo := postgres.NewUserRepo(app.DBPool)

	views := cache.NewViewCache(app.RedisClient, app.Config.Cache)
	invoiceService := services.NewInvoiceService(invoiceRepo, views)
	credentialsProvider := services.NewCredentialsProvider(userRepo, app.Config.JWT.Secret, app.Config.JWT.Expiration)

	// --- Create handlers ---
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, invoiceRepo, views, app.Validator)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	authHandler := handlers.NewAuthHandler(credentialsProvider, userRepo, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler)
	RegisterInvoiceRoutes(apiV1, invoiceHandler, authMiddleware)
	RegisterCustomerRoutes(apiV1, customerHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
