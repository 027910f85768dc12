package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a document fails its schema
	// validation. It is always wrapped with the failing field details.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a document ID is malformed.
	ErrInvalidID = errors.New("invalid ID")
)

// Shared validator instance used by the entity Validate methods.
// Required-field rules live in the struct tags next to the bson
// mapping, so the schema reads as one declaration.
var validate = validator.New()

// validateStruct runs the tag-declared rules for an entity and wraps
// any failure in ErrValidation so callers can branch with errors.Is.
func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
