package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Invoice Status Enum ---
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending" // Awaiting payment
	InvoiceStatusPaid    InvoiceStatus = "paid"    // Settled
)

// Scan implements the sql.Scanner interface for InvoiceStatus
func (s *InvoiceStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan InvoiceStatus: value is not string or []byte")
		}
	}
	v := InvoiceStatus(strVal)
	switch v {
	case InvoiceStatusPending, InvoiceStatusPaid:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid InvoiceStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for InvoiceStatus
func (s InvoiceStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// IsValid reports whether the status is one of the enumerated values.
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice represents a billable record.
// Amount is stored as integer cents; Date is assigned server-side at
// creation and never accepted from client input, same as ID.
type Invoice struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	CustomerID uuid.UUID     `json:"customer_id" db:"customer_id"`
	Amount     int64         `json:"amount" db:"amount"`
	Status     InvoiceStatus `json:"status" db:"status"`
	Date       time.Time     `json:"date" db:"date"`
}

// Customer represents a billable party referenced by invoices.
type Customer struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	ImageURL string    `json:"image_url" db:"image_url"`
}

// User represents a dashboard user able to sign in.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
}

// InvoiceWithCustomer is the joined row backing the invoice-list view.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  string `json:"customer_name" db:"customer_name"`
	CustomerEmail string `json:"customer_email" db:"customer_email"`
}
