package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested document does not exist.
	// This is the generic version of the entity-specific not found
	// errors (e.g., ErrComposerNotFound, ErrUserNotFound).
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an operation would create a
	// duplicate of a unique document (e.g., a user with the same
	// userName).
	ErrDuplicate = errors.New("document already exists")

	// ErrInvalidEntity is returned when a document fails schema
	// validation before being written. Check the wrapped error for the
	// failing fields.
	ErrInvalidEntity = errors.New("invalid document")

	// Entity-specific "not found" errors

	// ErrComposerNotFound indicates the requested composer does not exist.
	ErrComposerNotFound = fmt.Errorf("%w: composer", ErrNotFound)

	// ErrPersonNotFound indicates the requested person does not exist.
	ErrPersonNotFound = fmt.Errorf("%w: person", ErrNotFound)

	// ErrCustomerNotFound indicates the requested customer does not exist.
	ErrCustomerNotFound = fmt.Errorf("%w: customer", ErrNotFound)

	// ErrTeamNotFound indicates the requested team does not exist.
	ErrTeamNotFound = fmt.Errorf("%w: team", ErrNotFound)

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrUserNameExists indicates a user with the given userName already
	// exists. Returned on create when the unique index rejects the write.
	ErrUserNameExists = fmt.Errorf("%w: userName", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is the error type for driver and connectivity faults, with
// context about which operation on which entity failed.
type StoreError struct {
	Entity    string // The entity type (e.g., "composer", "team")
	Operation string // The operation that failed (e.g., "create", "find")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity,
// operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
