package handlers

import (
	"log"
	"net/http"

	"invoice-dashboard/internal/storage"
	"invoice-dashboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// CustomerHandler holds dependencies for customer operations.
type CustomerHandler struct {
	customerRepo storage.CustomerRepository
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerRepo storage.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

// ListCustomers godoc
// @Summary      List customers
// @Description  Returns all customers ordered by name, backing the invoice form's customer dropdown.
// @Tags         customers
// @Produce      json
// @Success      200 {array}   dto.CustomerResponse
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /customers [get]
// @Security     BearerAuth
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerRepo.List(c.Request.Context())
	if err != nil {
		log.Printf("ListCustomers: Error listing customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customers"})
		return
	}

	responses := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, MapCustomerToResponse(&customers[i]))
	}

	c.JSON(http.StatusOK, responses)
}
