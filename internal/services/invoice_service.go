package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"invoice-dashboard/internal/storage"
	"invoice-dashboard/internal/transport/dto"

	"github.com/google/uuid"
)

// InvoiceListPath identifies the cached invoice-list view; it is also the
// redirect target after a successful create or update.
const InvoiceListPath = "/dashboard/invoices"

// Revalidator marks a cached view stale so the next read recomputes it.
type Revalidator interface {
	Revalidate(ctx context.Context, path string)
}

// InvoiceService runs the invoice mutations: validate the form, execute
// one statement, revalidate the list view, and produce a terminal outcome.
type InvoiceService interface {
	Create(ctx context.Context, form dto.InvoiceForm) dto.ActionResult
	Update(ctx context.Context, id uuid.UUID, form dto.InvoiceForm) dto.ActionResult
	Delete(ctx context.Context, id uuid.UUID)
}

type invoiceService struct {
	repo  storage.InvoiceRepository
	views Revalidator
	now   func() time.Time
}

// NewInvoiceService creates a new instance of InvoiceService.
func NewInvoiceService(repo storage.InvoiceRepository, views Revalidator) InvoiceService {
	return &invoiceService{
		repo:  repo,
		views: views,
		now:   time.Now,
	}
}

// Create validates the form, inserts one invoice and redirects to the
// list view. Validation failures echo the submitted payload so the form
// re-renders pre-filled; persistence failures do not.
func (s *invoiceService) Create(ctx context.Context, form dto.InvoiceForm) dto.ActionResult {
	parsed, fieldErrs := ParseInvoiceForm(form)
	if fieldErrs != nil {
		return dto.Failed(&dto.InvoiceFormState{
			Message: "Missing Fields. Failed to Create Invoice.",
			Errors:  fieldErrs,
			Payload: &form,
		})
	}

	params := &dto.InsertInvoiceParams{
		CustomerID: parsed.CustomerID,
		Amount:     parsed.AmountInCents(),
		Status:     parsed.Status,
		Date:       s.now().Format("2006-01-02"),
	}
	if _, err := s.repo.Insert(ctx, params); err != nil {
		log.Printf("CreateInvoice: Error inserting invoice: %v", err)
		return dto.Failed(&dto.InvoiceFormState{
			Message: fmt.Sprintf("Database Error: Failed to Create Invoice: %v", err),
			Errors:  dto.FieldErrors{},
		})
	}

	s.views.Revalidate(ctx, InvoiceListPath)
	return dto.Redirect(InvoiceListPath)
}

// Update validates the form and rewrites customer, amount and status of
// the invoice matching id; its date and id stay untouched.
func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, form dto.InvoiceForm) dto.ActionResult {
	parsed, fieldErrs := ParseInvoiceForm(form)
	if fieldErrs != nil {
		return dto.Failed(&dto.InvoiceFormState{
			Message: "Missing Fields. Failed to Update Invoice.",
			Errors:  fieldErrs,
			Payload: &form,
		})
	}

	params := &dto.UpdateInvoiceParams{
		ID:         id,
		CustomerID: parsed.CustomerID,
		Amount:     parsed.AmountInCents(),
		Status:     parsed.Status,
	}
	if err := s.repo.Update(ctx, params); err != nil {
		log.Printf("UpdateInvoice: Error updating invoice %s: %v", id, err)
		return dto.Failed(&dto.InvoiceFormState{
			Message: fmt.Sprintf("Database Error: Failed to Update Invoice: %v", err),
			Errors:  dto.FieldErrors{},
		})
	}

	s.views.Revalidate(ctx, InvoiceListPath)
	return dto.Redirect(InvoiceListPath)
}

// Delete removes the invoice matching id. The list view is revalidated on
// every exit path, and a persistence failure is logged but never surfaced:
// delete is fire-and-forget from the caller's perspective.
func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) {
	defer s.views.Revalidate(ctx, InvoiceListPath)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("DeleteInvoice: Error deleting invoice %s: %v", id, err)
	}
}
