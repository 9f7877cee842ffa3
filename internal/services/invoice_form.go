package services

import (
	"math"
	"strconv"
	"strings"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/transport/dto"
)

// Per-field messages shown on the invoice form.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountTooSmall = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// ParsedInvoice is the typed result of a successful form validation.
// The id and date of an invoice are never part of the form; they come from
// the database and the server clock respectively.
type ParsedInvoice struct {
	CustomerID string
	Amount     float64
	Status     models.InvoiceStatus
}

// AmountInCents converts the dollar amount to integer cents. Rounding
// makes the conversion lossless for all two-decimal-place inputs.
func (p ParsedInvoice) AmountInCents() int64 {
	return int64(math.Round(p.Amount * 100))
}

// Form renders the typed record back into raw form input. Parsing the
// result reproduces the same record.
func (p ParsedInvoice) Form() dto.InvoiceForm {
	customerID := p.CustomerID
	amount := strconv.FormatFloat(p.Amount, 'f', -1, 64)
	status := string(p.Status)
	return dto.InvoiceForm{
		CustomerID: &customerID,
		Amount:     &amount,
		Status:     &status,
	}
}

// ParseInvoiceForm validates and coerces raw invoice form input. It
// returns either a typed record or the complete set of field errors,
// never both: every failing field is reported, not just the first.
func ParseInvoiceForm(form dto.InvoiceForm) (*ParsedInvoice, dto.FieldErrors) {
	fieldErrs := dto.FieldErrors{}
	var parsed ParsedInvoice

	if form.CustomerID == nil || *form.CustomerID == "" {
		fieldErrs.Add("customerId", MsgSelectCustomer)
	} else {
		parsed.CustomerID = *form.CustomerID
	}

	if form.Amount == nil {
		fieldErrs.Add("amount", MsgAmountTooSmall)
	} else {
		amount, err := strconv.ParseFloat(strings.TrimSpace(*form.Amount), 64)
		// ParseFloat accepts "NaN" and "Inf"; neither is a valid amount,
		// and NaN in particular would slip past the <= 0 check.
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
			fieldErrs.Add("amount", MsgAmountTooSmall)
		} else {
			parsed.Amount = amount
		}
	}

	if form.Status == nil || !models.InvoiceStatus(*form.Status).IsValid() {
		fieldErrs.Add("status", MsgSelectStatus)
	} else {
		parsed.Status = models.InvoiceStatus(*form.Status)
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return &parsed, nil
}
