package routes

import (
	"invoice-dashboard/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the sign-in and registration routes.
// No auth middleware here.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}
}
