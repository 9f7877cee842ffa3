package handlers

import (
	"fmt"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors turns validator errors into a field->message map.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		default:
			errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		}
	}
	return errorsMap
}

// invoiceFormFromRequest lifts the posted form fields into the raw form
// mapping, preserving absent-vs-empty so the validator can tell them apart.
func invoiceFormFromRequest(c *gin.Context) dto.InvoiceForm {
	var form dto.InvoiceForm
	if v, ok := c.GetPostForm("customerId"); ok {
		form.CustomerID = &v
	}
	if v, ok := c.GetPostForm("amount"); ok {
		form.Amount = &v
	}
	if v, ok := c.GetPostForm("status"); ok {
		form.Status = &v
	}
	return form
}

// MapInvoiceToResponse converts a models.Invoice to a dto.InvoiceResponse,
// translating stored cents back to dollars.
func MapInvoiceToResponse(inv *models.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     float64(inv.Amount) / 100,
		Status:     string(inv.Status),
		Date:       inv.Date.Format("2006-01-02"),
	}
}

// MapInvoiceWithCustomerToListItem converts a joined row to a list item.
func MapInvoiceWithCustomerToListItem(row *models.InvoiceWithCustomer) dto.InvoiceListItem {
	return dto.InvoiceListItem{
		InvoiceResponse: MapInvoiceToResponse(&row.Invoice),
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.CustomerEmail,
	}
}

// MapUserToResponse converts a models.User to a dto.UserResponse. The
// password hash never leaves the storage layer.
func MapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// MapCustomerToResponse converts a models.Customer to a dto.CustomerResponse.
func MapCustomerToResponse(customer *models.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:   customer.ID,
		Name: customer.Name,
	}
}
