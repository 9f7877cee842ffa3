package postgres

import (
	"context"
	"fmt"
	"log"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerRepo implements the storage.CustomerRepository interface using PostgreSQL.
type CustomerRepo struct {
	db Querier
}

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{db: db}
}

var _ storage.CustomerRepository = (*CustomerRepo)(nil)

// List returns all customers ordered by name, for the invoice form dropdown.
func (r *CustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying customers: %v", err)
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			log.Printf("Error scanning customer row: %v", err)
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer rows: %w", err)
	}

	return customers, nil
}
