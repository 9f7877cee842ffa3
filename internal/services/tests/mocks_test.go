package services_test

import (
	"context"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/storage"
	"invoice-dashboard/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInvoiceRepository is a mock type for the storage.InvoiceRepository interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Insert(ctx context.Context, params *dto.InsertInvoiceParams) (*models.Invoice, error) {
	args := m.Called(ctx, params)
	if inv := args.Get(0); inv != nil {
		return inv.(*models.Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, params *dto.UpdateInvoiceParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if inv := args.Get(0); inv != nil {
		return inv.(*models.Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInvoiceRepository) List(ctx context.Context, req *dto.ListInvoicesRequest) ([]models.InvoiceWithCustomer, error) {
	args := m.Called(ctx, req)
	if rows := args.Get(0); rows != nil {
		return rows.([]models.InvoiceWithCustomer), args.Error(1)
	}
	return nil, args.Error(1)
}

var _ storage.InvoiceRepository = (*MockInvoiceRepository)(nil)

// MockRevalidator is a mock type for the services.Revalidator interface
type MockRevalidator struct {
	mock.Mock
}

func (m *MockRevalidator) Revalidate(ctx context.Context, path string) {
	m.Called(ctx, path)
}

// MockUserRepository is a mock type for the storage.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

var _ storage.UserRepository = (*MockUserRepository)(nil)
