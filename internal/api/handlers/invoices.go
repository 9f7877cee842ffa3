package handlers

import (
	"errors"
	"log"
	"net/http"

	"invoice-dashboard/internal/cache"
	"invoice-dashboard/internal/services"
	"invoice-dashboard/internal/storage"
	"invoice-dashboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InvoiceHandler holds dependencies for invoice operations.
type InvoiceHandler struct {
	service     services.InvoiceService
	invoiceRepo storage.InvoiceRepository
	views       *cache.ViewCache
	validator   *validator.Validate
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(service services.InvoiceService, invoiceRepo storage.InvoiceRepository, views *cache.ViewCache, validate *validator.Validate) *InvoiceHandler {
	return &InvoiceHandler{
		service:     service,
		invoiceRepo: invoiceRepo,
		views:       views,
		validator:   validate,
	}
}

// writeActionResult maps a mutation outcome onto the response: a 303 to
// the list view on success, otherwise the form state as JSON (422 for
// validation failures, 500 for persistence failures).
func writeActionResult(c *gin.Context, result dto.ActionResult) {
	if result.Redirected() {
		c.Redirect(http.StatusSeeOther, result.RedirectTo)
		return
	}
	status := http.StatusInternalServerError
	if len(result.State.Errors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result.State)
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Validates the posted invoice form, inserts the invoice (amount stored as cents, date assigned server-side) and redirects to the invoice list. Validation failures return the form state with per-field messages and the echoed payload.
// @Tags         invoices
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        customerId formData string false "Customer ID"
// @Param        amount     formData string false "Amount in dollars"
// @Param        status     formData string false "pending or paid"
// @Success      303 {string}  string "Redirect to /dashboard/invoices"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      422 {object}  dto.InvoiceFormState "Validation failed"
// @Failure      500 {object}  dto.InvoiceFormState "Database error"
// @Router       /invoices [post]
// @Security     BearerAuth
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	form := invoiceFormFromRequest(c)
	result := h.service.Create(c.Request.Context(), form)
	writeActionResult(c, result)
}

// UpdateInvoice godoc
// @Summary      Update an invoice
// @Description  Validates the posted invoice form and rewrites customer, amount and status of the invoice; its id and date are immutable.
// @Tags         invoices
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id         path     string true  "Invoice ID" Format(uuid)
// @Param        customerId formData string false "Customer ID"
// @Param        amount     formData string false "Amount in dollars"
// @Param        status     formData string false "pending or paid"
// @Success      303 {string}  string "Redirect to /dashboard/invoices"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      422 {object}  dto.InvoiceFormState "Validation failed"
// @Failure      500 {object}  dto.InvoiceFormState "Database error"
// @Router       /invoices/{id} [put]
// @Security     BearerAuth
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID format"})
		return
	}

	form := invoiceFormFromRequest(c)
	result := h.service.Update(c.Request.Context(), id, form)
	writeActionResult(c, result)
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Description  Deletes the invoice and revalidates the list view. Persistence failures are logged but never surfaced; the response is 204 either way.
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" Format(uuid)
// @Success      204 {string}  string "No Content"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /invoices/{id} [delete]
// @Security     BearerAuth
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID format"})
		return
	}

	h.service.Delete(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// GetInvoiceByID godoc
// @Summary      Get an invoice by ID
// @Description  Retrieves a single invoice, amount converted back to dollars. Backs the edit form.
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" Format(uuid)
// @Success      200 {object}  dto.InvoiceResponse
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Invoice Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices/{id} [get]
// @Security     BearerAuth
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID format"})
		return
	}

	invoice, err := h.invoiceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			log.Printf("GetInvoiceByID: Error fetching invoice %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, MapInvoiceToResponse(invoice))
}

// ListInvoices godoc
// @Summary      List invoices
// @Description  Returns invoices joined with customer name/email, newest first. Supports case-insensitive search and pagination. The default (unfiltered, first-page) view is served through the redis view cache and recomputed after mutations revalidate it.
// @Tags         invoices
// @Produce      json
// @Param        query  query string false "Search over customer name, email and status"
// @Param        limit  query int    false "Pagination limit" default(10)
// @Param        offset query int    false "Pagination offset" default(0)
// @Success      200 {array}   dto.InvoiceListItem
// @Failure      400 {object}  map[string]string "Bad Request"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices [get]
// @Security     BearerAuth
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var req dto.ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	// Only the default view is cached; it is what mutations revalidate.
	cacheable := req.Query == "" && req.Offset == 0 && req.Limit == 10

	if cacheable {
		var cached []dto.InvoiceListItem
		if h.views.Get(c.Request.Context(), services.InvoiceListPath, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	rows, err := h.invoiceRepo.List(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListInvoices: Error listing invoices: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoices"})
		return
	}

	items := make([]dto.InvoiceListItem, 0, len(rows))
	for i := range rows {
		items = append(items, MapInvoiceWithCustomerToListItem(&rows[i]))
	}

	if cacheable {
		h.views.Set(c.Request.Context(), services.InvoiceListPath, items)
	}

	c.JSON(http.StatusOK, items)
}
