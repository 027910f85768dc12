package store

import (
	"context"

	"github.com/Zadkiel26/web-420/internal/domain"
)

// PersonStore defines the interface for person persistence.
type PersonStore interface {
	// Create saves a new person with its embedded roles and dependents.
	// Returns ErrInvalidEntity (wrapped) if validation fails.
	Create(ctx context.Context, person *domain.Person) error

	// FindAll retrieves every person document.
	FindAll(ctx context.Context) ([]domain.Person, error)
}
