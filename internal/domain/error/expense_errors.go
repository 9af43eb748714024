// Package error defines domain-specific errors for the Home Ledger application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNotAuthorizedToModifyExpense is returned when user is not authorized to modify an expense.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify expense")

	// ErrNegativeExpenseValue is returned when the expense value is negative.
	ErrNegativeExpenseValue = errors.New("expense value must not be negative")

	// ErrInvalidExpenseStatus is returned when the expense status is invalid.
	ErrInvalidExpenseStatus = errors.New("invalid expense status")

	// ErrInvalidRecurrence is returned when the recurrence descriptor is invalid.
	ErrInvalidRecurrence = errors.New("invalid recurrence descriptor")

	// ErrInstallmentsOutOfRange is returned when the installment count is outside [1, 360].
	ErrInstallmentsOutOfRange = errors.New("installment count out of range")

	// ErrCardNotFoundForExpense is returned when the specified card is not found.
	ErrCardNotFoundForExpense = errors.New("card not found")

	// ErrAccountNotFoundForExpense is returned when the specified account is not found.
	ErrAccountNotFoundForExpense = errors.New("account not found")

	// ErrExpenseDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrExpenseDescriptionTooLong = errors.New("description too long")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeExpenseValue      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseStatus      ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidRecurrence         ExpenseErrorCode = "EXP-010003"
	ErrCodeInstallmentsOutOfRange    ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseDescriptionTooLong ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields      ExpenseErrorCode = "EXP-010006"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-020001"
	ErrCodeNotAuthorizedExpense ExpenseErrorCode = "EXP-020002"
	ErrCodeExpCardNotFound      ExpenseErrorCode = "EXP-020003"
	ErrCodeExpAccountNotFound   ExpenseErrorCode = "EXP-020004"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
