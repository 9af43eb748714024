// Package error defines domain-specific errors for the Home Ledger application.
package error

import "errors"

// Household domain errors.
var (
	// ErrHouseholdNotFound is returned when a household is not found in the system.
	ErrHouseholdNotFound = errors.New("household not found")

	// ErrNotHouseholdMember is returned when the user is not a member of the household.
	ErrNotHouseholdMember = errors.New("not a member of this household")

	// ErrNotHouseholdOwner is returned when an owner-only operation is attempted by a member.
	ErrNotHouseholdOwner = errors.New("only the household owner can do this")

	// ErrAlreadyHouseholdMember is returned when inviting someone who is already a member.
	ErrAlreadyHouseholdMember = errors.New("user is already a member of this household")

	// ErrCannotInviteSelf is returned when a user invites their own email.
	ErrCannotInviteSelf = errors.New("you cannot invite yourself")

	// ErrInviteNotFound is returned when an invitation token does not match a pending invite.
	ErrInviteNotFound = errors.New("invitation not found")

	// ErrInviteExpired is returned when accepting an expired invitation.
	ErrInviteExpired = errors.New("invitation has expired")

	// ErrInvitePending is returned when a pending invite already exists for the email.
	ErrInvitePending = errors.New("an invitation is already pending for this email")

	// ErrInvalidHouseholdEmail is returned when the invite email format is invalid.
	ErrInvalidHouseholdEmail = errors.New("invalid email address")

	// ErrOwnerCannotLeave is returned when the owner tries to leave their own household.
	ErrOwnerCannotLeave = errors.New("the owner cannot leave the household")
)

// HouseholdErrorCode defines error codes for household errors.
// Format: HH-XXYYYY where XX is category and YYYY is specific error.
type HouseholdErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHouseholdEmail HouseholdErrorCode = "HH-010001"
	ErrCodeMissingHouseholdName  HouseholdErrorCode = "HH-010002"

	// Membership errors (02XXXX)
	ErrCodeHouseholdNotFound      HouseholdErrorCode = "HH-020001"
	ErrCodeNotHouseholdMember     HouseholdErrorCode = "HH-020002"
	ErrCodeNotHouseholdOwner      HouseholdErrorCode = "HH-020003"
	ErrCodeAlreadyHouseholdMember HouseholdErrorCode = "HH-020004"
	ErrCodeOwnerCannotLeave       HouseholdErrorCode = "HH-020005"

	// Invitation errors (03XXXX)
	ErrCodeCannotInviteSelf HouseholdErrorCode = "HH-030001"
	ErrCodeInviteNotFound   HouseholdErrorCode = "HH-030002"
	ErrCodeInviteExpired    HouseholdErrorCode = "HH-030003"
	ErrCodeInvitePending    HouseholdErrorCode = "HH-030004"
)

// HouseholdError represents a household error with code and message.
type HouseholdError struct {
	Code    HouseholdErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HouseholdError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HouseholdError) Unwrap() error {
	return e.Err
}

// NewHouseholdError creates a new HouseholdError with the given code and message.
func NewHouseholdError(code HouseholdErrorCode, message string, err error) *HouseholdError {
	return &HouseholdError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
