package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/storage"
	"invoice-dashboard/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InvoiceRepo implements the storage.InvoiceRepository interface using PostgreSQL.
type InvoiceRepo struct {
	db Querier
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(db *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// Compile-time check to ensure InvoiceRepo implements InvoiceRepository
var _ storage.InvoiceRepository = (*InvoiceRepo)(nil)

// Insert saves a new invoice. The database assigns id; date arrives
// server-assigned in the params, never from the client.
func (r *InvoiceRepo) Insert(ctx context.Context, params *dto.InsertInvoiceParams) (*models.Invoice, error) {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, customer_id, amount, status, date
	`

	row := r.db.QueryRow(ctx, query,
		params.CustomerID,
		params.Amount,
		params.Status,
		params.Date,
	)

	var created models.Invoice
	err := row.Scan(
		&created.ID,
		&created.CustomerID,
		&created.Amount,
		&created.Status,
		&created.Date,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Printf("Error inserting invoice: customer %s does not exist: %v", params.CustomerID, err)
			return nil, fmt.Errorf("customer does not exist: %w", storage.ErrForeignKey)
		}
		log.Printf("Error inserting invoice: %v", err)
		return nil, fmt.Errorf("failed to insert invoice: %w", err)
	}

	log.Printf("Invoice created successfully with ID: %s for Customer ID: %s", created.ID, created.CustomerID)
	return &created, nil
}

// Update rewrites customer_id, amount and status of the invoice matching
// id. The row's date and id are untouched.
func (r *InvoiceRepo) Update(ctx context.Context, params *dto.UpdateInvoiceParams) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query,
		params.CustomerID,
		params.Amount,
		params.Status,
		params.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Printf("Error updating invoice %s: customer %s does not exist: %v", params.ID, params.CustomerID, err)
			return fmt.Errorf("customer does not exist: %w", storage.ErrForeignKey)
		}
		log.Printf("Error updating invoice %s: %v", params.ID, err)
		return fmt.Errorf("failed to update invoice %s: %w", params.ID, err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Invoice not found for update with ID: %s", params.ID)
		return storage.ErrNotFound
	}

	return nil
}

// Delete removes the invoice matching id.
func (r *InvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting invoice %s: %v", id, err)
		return fmt.Errorf("failed to delete invoice %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Invoice not found for deletion with ID: %s", id)
		return storage.ErrNotFound
	}

	log.Printf("Invoice deleted successfully: %s", id)
	return nil
}

// GetByID retrieves a single invoice by ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`

	var inv models.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID,
		&inv.CustomerID,
		&inv.Amount,
		&inv.Status,
		&inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Invoice not found with ID: %s", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving invoice by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get invoice by ID %s: %w", id, err)
	}

	return &inv, nil
}

// List returns the joined invoice+customer rows backing the list view,
// optionally filtered by a case-insensitive search over customer name,
// email and status.
func (r *InvoiceRepo) List(ctx context.Context, req *dto.ListInvoicesRequest) ([]models.InvoiceWithCustomer, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date, c.name, c.email
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE ($1 = ''
			OR c.name ILIKE '%' || $1 || '%'
			OR c.email ILIKE '%' || $1 || '%'
			OR i.status ILIKE '%' || $1 || '%')
		ORDER BY i.date DESC, i.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, req.Query, req.Limit, req.Offset)
	if err != nil {
		log.Printf("Error querying invoices: %v", err)
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []models.InvoiceWithCustomer
	for rows.Next() {
		var item models.InvoiceWithCustomer
		if err := rows.Scan(
			&item.ID,
			&item.CustomerID,
			&item.Amount,
			&item.Status,
			&item.Date,
			&item.CustomerName,
			&item.CustomerEmail,
		); err != nil {
			log.Printf("Error scanning invoice row: %v", err)
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}

	return invoices, nil
}
