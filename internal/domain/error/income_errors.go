// Package error defines domain-specific errors for the Home Ledger application.
package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income is not found in the system.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrNotAuthorizedToModifyIncome is returned when user is not authorized to modify an income.
	ErrNotAuthorizedToModifyIncome = errors.New("not authorized to modify income")

	// ErrNegativeIncomeValue is returned when the income value is negative.
	ErrNegativeIncomeValue = errors.New("income value must not be negative")

	// ErrIncomeAccountNotFound is returned when the target account is not found.
	ErrIncomeAccountNotFound = errors.New("account not found")

	// ErrIncomeAlreadyReceived is returned when marking a received income as received again.
	ErrIncomeAlreadyReceived = errors.New("income already marked as received")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeIncomeValue IncomeErrorCode = "INC-010001"
	ErrCodeMissingIncomeFields IncomeErrorCode = "INC-010002"

	// Lookup errors (02XXXX)
	ErrCodeIncomeNotFound         IncomeErrorCode = "INC-020001"
	ErrCodeNotAuthorizedIncome    IncomeErrorCode = "INC-020002"
	ErrCodeIncomeAccountNotFound  IncomeErrorCode = "INC-020003"

	// State errors (03XXXX)
	ErrCodeIncomeAlreadyReceived IncomeErrorCode = "INC-030001"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
