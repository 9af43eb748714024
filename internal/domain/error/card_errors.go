// Package error defines domain-specific errors for the Home Ledger application.
package error

import "errors"

// Card domain errors.
var (
	// ErrCardNotFound is returned when a card is not found in the system.
	ErrCardNotFound = errors.New("card not found")

	// ErrNotAuthorizedToModifyCard is returned when user is not authorized to modify a card.
	ErrNotAuthorizedToModifyCard = errors.New("not authorized to modify card")

	// ErrInvalidCardType is returned when the card type is invalid.
	ErrInvalidCardType = errors.New("card type must be 'debit' or 'credit'")

	// ErrInvalidCardDay is returned when the due or closing day is outside 1-31.
	ErrInvalidCardDay = errors.New("day of month must be between 1 and 31")

	// ErrNegativeCreditLimit is returned when the credit limit is negative.
	ErrNegativeCreditLimit = errors.New("credit limit must not be negative")

	// ErrCardAccountNotFound is returned when the settlement account is not found.
	ErrCardAccountNotFound = errors.New("settlement account not found")

	// ErrCardHasExpenses is returned when deleting a card that still has expenses.
	ErrCardHasExpenses = errors.New("card still has expenses")
)

// CardErrorCode defines error codes for card errors.
// Format: CARD-XXYYYY where XX is category and YYYY is specific error.
type CardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCardType     CardErrorCode = "CARD-010001"
	ErrCodeInvalidCardDay      CardErrorCode = "CARD-010002"
	ErrCodeNegativeCreditLimit CardErrorCode = "CARD-010003"
	ErrCodeMissingCardFields   CardErrorCode = "CARD-010004"

	// Lookup errors (02XXXX)
	ErrCodeCardNotFound        CardErrorCode = "CARD-020001"
	ErrCodeNotAuthorizedCard   CardErrorCode = "CARD-020002"
	ErrCodeCardAccountNotFound CardErrorCode = "CARD-020003"

	// Deletion errors (03XXXX)
	ErrCodeCardHasExpenses CardErrorCode = "CARD-030001"
)

// CardError represents a card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
