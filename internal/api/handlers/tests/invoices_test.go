package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"invoice-dashboard/internal/api/handlers"
	"invoice-dashboard/internal/services"
	"invoice-dashboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoiceService is a mock implementation of services.InvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, form dto.InvoiceForm) dto.ActionResult {
	args := m.Called(ctx, form)
	return args.Get(0).(dto.ActionResult)
}

func (m *MockInvoiceService) Update(ctx context.Context, id uuid.UUID, form dto.InvoiceForm) dto.ActionResult {
	args := m.Called(ctx, id, form)
	return args.Get(0).(dto.ActionResult)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id uuid.UUID) {
	m.Called(ctx, id)
}

var _ services.InvoiceService = (*MockInvoiceService)(nil)

func setupInvoiceRouter(service services.InvoiceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewInvoiceHandler(service, nil, nil, nil)
	router.POST("/invoices", h.CreateInvoice)
	router.PUT("/invoices/:id", h.UpdateInvoice)
	router.DELETE("/invoices/:id", h.DeleteInvoice)
	return router
}

func postForm(router *gin.Engine, method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateInvoiceHandler_RedirectsOnSuccess(t *testing.T) {
	mockService := new(MockInvoiceService)
	router := setupInvoiceRouter(mockService)

	customerID := uuid.New().String()
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(form dto.InvoiceForm) bool {
		return form.CustomerID != nil && *form.CustomerID == customerID &&
			form.Amount != nil && *form.Amount == "15.00" &&
			form.Status != nil && *form.Status == "pending"
	})).Return(dto.Redirect("/dashboard/invoices"))

	rec := postForm(router, http.MethodPost, "/invoices", url.Values{
		"customerId": {customerID},
		"amount":     {"15.00"},
		"status":     {"pending"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/invoices", rec.Header().Get("Location"))
	mockService.AssertExpectations(t)
}

func TestCreateInvoiceHandler_AbsentFieldsStayAbsent(t *testing.T) {
	mockService := new(MockInvoiceService)
	router := setupInvoiceRouter(mockService)

	// Fields missing from the request body arrive as nil, not empty strings.
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(form dto.InvoiceForm) bool {
		return form.CustomerID == nil && form.Amount == nil && form.Status == nil
	})).Return(dto.Failed(&dto.InvoiceFormState{
		Message: "Missing Fields. Failed to Create Invoice.",
		Errors:  dto.FieldErrors{"customerId": {services.MsgSelectCustomer}},
	}))

	rec := postForm(router, http.MethodPost, "/invoices", url.Values{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateInvoiceHandler_ValidationFailureBody(t *testing.T) {
	mockService := new(MockInvoiceService)
	router := setupInvoiceRouter(mockService)

	payload := dto.InvoiceForm{}
	empty := ""
	amount := "15.00"
	status := "pending"
	payload.CustomerID = &empty
	payload.Amount = &amount
	payload.Status = &status

	mockService.On("Create", mock.Anything, mock.Anything).Return(dto.Failed(&dto.InvoiceFormState{
		Message: "Missing Fields. Failed to Create Invoice.",
		Errors:  dto.FieldErrors{"customerId": {services.MsgSelectCustomer}},
		Payload: &payload,
	}))

	rec := postForm(router, http.MethodPost, "/invoices", url.Values{
		"customerId": {""},
		"amount":     {"15.00"},
		"status":     {"pending"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var state dto.InvoiceFormState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", state.Message)
	assert.Equal(t, []string{services.MsgSelectCustomer}, state.Errors["customerId"])
	require.NotNil(t, state.Payload)
	assert.Equal(t, "15.00", *state.Payload.Amount)
}

func TestCreateInvoiceHandler_DatabaseErrorIs500(t *testing.T) {
	mockService := new(MockInvoiceService)
	router := setupInvoiceRouter(mockService)

	mockService.On("Create", mock.Anything, mock.Anything).Return(dto.Failed(&dto.InvoiceFormState{
		Message: "Database Error: Failed to Create Invoice: customer does not exist",
		Errors:  dto.FieldErrors{},
	}))

	rec := postForm(router, http.MethodPost, "/invoices", url.Values{
		"customerId": {uuid.New().String()},
		"amount":     {"15.00"},
		"status":     {"pending"},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateInvoiceHandler_InvalidID(t *testing.T) {
	mockService := new(MockInvoiceService)
	router := setupInvoiceRouter(mockService)

	rec := postForm(router, http.MethodPut, "/invoices/not-a-uuid", url.Values{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteInvoiceHandler_AlwaysNoContent(t *testing.T) {
	mockService := new(MockInvoiceService)
	router := setupInvoiceRouter(mockService)

	invoiceID := uuid.New()
	mockService.On("Delete", mock.Anything, invoiceID).Return()

	req := httptest.NewRequest(http.MethodDelete, "/invoices/"+invoiceID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Delete is fire-and-forget: the service surfaces nothing, the
	// response is 204 regardless of what the store did.
	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockService.AssertExpectations(t)
}
