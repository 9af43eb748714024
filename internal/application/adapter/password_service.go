// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword generates a hash of the given password.
	HashPassword(password string) (string, error)

	// VerifyPassword checks whether the password matches the hash.
	VerifyPassword(hash, password string) error

	// ValidatePasswordStrength checks the password against minimum requirements.
	ValidatePasswordStrength(password string) error
}
