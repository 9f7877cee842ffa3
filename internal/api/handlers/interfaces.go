package handlers

import "github.com/gin-gonic/gin"

// InvoiceHandlerInterface lets the routes be tested against a mock handler.
type InvoiceHandlerInterface interface {
	CreateInvoice(c *gin.Context)
	UpdateInvoice(c *gin.Context)
	DeleteInvoice(c *gin.Context)
	GetInvoiceByID(c *gin.Context)
	ListInvoices(c *gin.Context)
}

// CustomerHandlerInterface mirrors CustomerHandler for route tests.
type CustomerHandlerInterface interface {
	ListCustomers(c *gin.Context)
}

// AuthHandlerInterface mirrors AuthHandler for route tests.
type AuthHandlerInterface interface {
	Login(c *gin.Context)
	Register(c *gin.Context)
}

var _ InvoiceHandlerInterface = (*InvoiceHandler)(nil)
var _ CustomerHandlerInterface = (*CustomerHandler)(nil)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
