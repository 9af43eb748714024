// Package error defines domain-specific errors for the Home Ledger application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotAuthorizedToModifyAccount is returned when user is not authorized to modify an account.
	ErrNotAuthorizedToModifyAccount = errors.New("not authorized to modify account")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("account type must be 'checking', 'savings' or 'wallet'")

	// ErrAccountNameRequired is returned when the account name is empty.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrAccountInUse is returned when deleting an account referenced by cards or records.
	ErrAccountInUse = errors.New("account is still referenced by cards or records")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountType  AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameRequired AccountErrorCode = "ACC-010002"

	// Lookup errors (02XXXX)
	ErrCodeAccountNotFound      AccountErrorCode = "ACC-020001"
	ErrCodeNotAuthorizedAccount AccountErrorCode = "ACC-020002"

	// Deletion errors (03XXXX)
	ErrCodeAccountInUse AccountErrorCode = "ACC-030001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
