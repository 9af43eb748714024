// Package error defines domain-specific errors for the Home Ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNotAuthorizedToModifyBudget is returned when user is not authorized to modify a budget.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")

	// ErrNegativeBudgetAmount is returned when the planned amount is negative.
	ErrNegativeBudgetAmount = errors.New("planned amount must not be negative")

	// ErrBudgetAreaRequired is returned when the budget area is empty.
	ErrBudgetAreaRequired = errors.New("budget area is required")

	// ErrInvalidBudgetMonth is returned when the budget month is outside 1-12.
	ErrInvalidBudgetMonth = errors.New("budget month must be between 1 and 12")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeBudgetAmount BudgetErrorCode = "BDG-010001"
	ErrCodeBudgetAreaRequired   BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetMonth   BudgetErrorCode = "BDG-010003"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound      BudgetErrorCode = "BDG-020001"
	ErrCodeNotAuthorizedBudget BudgetErrorCode = "BDG-020002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
