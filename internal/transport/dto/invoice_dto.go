package dto

import (
	"invoice-dashboard/internal/models"

	"github.com/google/uuid"
)

// InvoiceForm is the raw invoice form input exactly as submitted: field
// name to value, nil when the field was absent from the request. Coercion
// and validation happen in the form parser, never here.
type InvoiceForm struct {
	CustomerID *string `json:"customerId"`
	Amount     *string `json:"amount"`
	Status     *string `json:"status"`
}

// FieldErrors maps a field name to its ordered validation messages.
type FieldErrors map[string][]string

// Add appends a message to the named field's error list.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// InvoiceFormState describes one failed mutation attempt. Payload echoes
// the submitted input so the form can be re-rendered pre-filled; it is set
// only for validation failures, never for persistence failures.
type InvoiceFormState struct {
	Message string       `json:"message"`
	Errors  FieldErrors  `json:"errors"`
	Payload *InvoiceForm `json:"payload,omitempty"`
}

// ActionResult is the terminal outcome of a mutation handler: either a
// redirect target or an error state, never both.
type ActionResult struct {
	RedirectTo string
	State      *InvoiceFormState
}

// Redirected reports whether the mutation ended in a redirect.
func (r ActionResult) Redirected() bool {
	return r.RedirectTo != ""
}

// Redirect builds the success outcome.
func Redirect(path string) ActionResult {
	return ActionResult{RedirectTo: path}
}

// Failed builds the error outcome.
func Failed(state *InvoiceFormState) ActionResult {
	return ActionResult{State: state}
}

// InsertInvoiceParams carries the typed values for the single INSERT.
// CustomerID stays a string; whether it resolves to an existing customer
// is enforced by the database, not by the validator.
type InsertInvoiceParams struct {
	CustomerID string
	Amount     int64 // cents
	Status     models.InvoiceStatus
	Date       string // ISO date, server-assigned
}

// UpdateInvoiceParams carries the typed values for the single UPDATE.
// The stored row's date and id are never touched.
type UpdateInvoiceParams struct {
	ID         uuid.UUID
	CustomerID string
	Amount     int64 // cents
	Status     models.InvoiceStatus
}

// ListInvoicesRequest defines query parameters for the invoice-list view.
type ListInvoicesRequest struct {
	Query  string `form:"query"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
	Offset int    `form:"offset,default=0" validate:"min=0"`
}

// InvoiceResponse is the invoice data returned to the client, with the
// amount converted back from cents to dollars.
type InvoiceResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	Date       string    `json:"date"`
}

// InvoiceListItem is one row of the invoice-list view.
type InvoiceListItem struct {
	InvoiceResponse
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// CustomerResponse backs the customer dropdown on the invoice form.
type CustomerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
