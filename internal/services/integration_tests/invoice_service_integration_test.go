package integration_tests

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"invoice-dashboard/internal/services"
	"invoice-dashboard/internal/storage/postgres"
	"invoice-dashboard/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRevalidator records revalidated paths instead of touching redis,
// keeping the integration test postgres-only.
type recordingRevalidator struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingRevalidator) Revalidate(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

// setupIntegration connects to the database named by TEST_DATABASE_URL, or
// skips the test when it is unset. The schema from sql/schema.sql must be
// applied to that database.
func setupIntegration(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))
	return ctx, pool
}

func createTestCustomer(t *testing.T, ctx context.Context, pool *pgxpool.Pool) (uuid.UUID, string) {
	t.Helper()

	email := uuid.New().String() + "@example.com"
	var id uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO customers (name, email, image_url)
		VALUES ($1, $2, '')
		RETURNING id
	`, "Integration Customer", email).Scan(&id)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM invoices WHERE customer_id = $1`, id)
		pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	})
	return id, email
}

func TestInvoiceService_Integration_CreateUpdateDelete(t *testing.T) {
	ctx, pool := setupIntegration(t)
	customerID, customerEmail := createTestCustomer(t, ctx, pool)

	repo := postgres.NewInvoiceRepo(pool)
	views := &recordingRevalidator{}
	service := services.NewInvoiceService(repo, views)

	// Create
	customer := customerID.String()
	amount := "15.00"
	status := "pending"
	result := service.Create(ctx, dto.InvoiceForm{
		CustomerID: &customer,
		Amount:     &amount,
		Status:     &status,
	})
	require.True(t, result.Redirected(), "create should redirect, got state: %+v", result.State)
	require.Equal(t, []string{services.InvoiceListPath}, views.paths)

	// The stored row has the amount in cents and today's date.
	rows, err := repo.List(ctx, &dto.ListInvoicesRequest{Query: customerEmail, Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1500), rows[0].Amount)
	assert.Equal(t, time.Now().Format("2006-01-02"), rows[0].Date.Format("2006-01-02"))

	invoiceID := rows[0].ID

	// Update
	amount = "20.50"
	status = "paid"
	result = service.Update(ctx, invoiceID, dto.InvoiceForm{
		CustomerID: &customer,
		Amount:     &amount,
		Status:     &status,
	})
	require.True(t, result.Redirected())

	updated, err := repo.GetByID(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, int64(2050), updated.Amount)
	assert.Equal(t, "paid", string(updated.Status))

	// Delete; deleting again must stay silent and still revalidate.
	service.Delete(ctx, invoiceID)
	service.Delete(ctx, invoiceID)

	_, err = repo.GetByID(ctx, invoiceID)
	assert.Error(t, err)
	assert.Len(t, views.paths, 4)
}
