package routes

import (
	"invoice-dashboard/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterInvoiceRoutes registers all routes related to invoices.
func RegisterInvoiceRoutes(
	rg *gin.RouterGroup,
	invoiceHandler handlers.InvoiceHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	invoices := rg.Group("/invoices")
	invoices.Use(authMiddleware)
	{
		invoices.GET("", invoiceHandler.ListInvoices)         // Invoice list view (cached)
		invoices.POST("", invoiceHandler.CreateInvoice)       // Create from the invoice form
		invoices.GET("/:id", invoiceHandler.GetInvoiceByID)   // Backs the edit form
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)    // Update from the edit form
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice) // Fire-and-forget delete
	}
}
