package routes

import (
	"invoice-dashboard/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes registers all routes related to customers.
func RegisterCustomerRoutes(
	rg *gin.RouterGroup,
	customerHandler handlers.CustomerHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	customers := rg.Group("/customers")
	customers.Use(authMiddleware)
	{
		customers.GET("", customerHandler.ListCustomers) // Dropdown on the invoice form
	}
}
