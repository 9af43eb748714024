// Package error defines domain-specific errors for the Home Ledger application.
package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvoiceNotFound is returned when no invoice exists for the requested card and month.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvoiceAlreadyPaid is returned when paying an invoice that is already paid.
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")

	// ErrInvoiceCardNotFound is returned when the invoice's card is not found.
	ErrInvoiceCardNotFound = errors.New("card not found")

	// ErrInvoiceAccountNotFound is returned when the settlement account is not found.
	ErrInvoiceAccountNotFound = errors.New("settlement account not found")

	// ErrInvoiceNotCreditCard is returned when requesting invoices for a debit card.
	ErrInvoiceNotCreditCard = errors.New("invoices exist only for credit cards")

	// ErrInvalidInvoiceMonth is returned when the invoice month is outside 1-12.
	ErrInvalidInvoiceMonth = errors.New("invoice month must be between 1 and 12")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidInvoiceMonth  InvoiceErrorCode = "INV-010001"
	ErrCodeInvoiceNotCreditCard InvoiceErrorCode = "INV-010002"

	// Lookup errors (02XXXX)
	ErrCodeInvoiceNotFound        InvoiceErrorCode = "INV-020001"
	ErrCodeInvoiceCardNotFound    InvoiceErrorCode = "INV-020002"
	ErrCodeInvoiceAccountNotFound InvoiceErrorCode = "INV-020003"

	// Payment errors (03XXXX)
	ErrCodeInvoiceAlreadyPaid InvoiceErrorCode = "INV-030001"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
