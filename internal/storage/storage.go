package storage

import (
	"context"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/transport/dto"

	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice data operations.
// Each mutation issues exactly one parameterized statement.
type InvoiceRepository interface {
	Insert(ctx context.Context, params *dto.InsertInvoiceParams) (*models.Invoice, error)
	Update(ctx context.Context, params *dto.UpdateInvoiceParams) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	List(ctx context.Context, req *dto.ListInvoicesRequest) ([]models.InvoiceWithCustomer, error)
}

// CustomerRepository defines the interface for customer data operations.
type CustomerRepository interface {
	List(ctx context.Context) ([]models.Customer, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
}
