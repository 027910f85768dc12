package store

import (
	"context"

	"github.com/Zadkiel26/web-420/internal/domain"
)

// ComposerStore defines the interface for composer persistence.
type ComposerStore interface {
	// Create saves a new composer. It runs schema validation and
	// assigns the document ID on success.
	// Returns ErrInvalidEntity (wrapped) if validation fails.
	Create(ctx context.Context, composer *domain.Composer) error

	// FindAll retrieves every composer document.
	FindAll(ctx context.Context) ([]domain.Composer, error)

	// FindByID retrieves a composer by its document ID.
	// Returns ErrComposerNotFound if no document matches.
	FindByID(ctx context.Context, id string) (*domain.Composer, error)

	// Update overwrites the name fields of an existing composer and
	// returns the updated document.
	// Returns ErrComposerNotFound if no document matches.
	Update(ctx context.Context, id, firstName, lastName string) (*domain.Composer, error)

	// Delete removes a composer by its document ID and returns the
	// deleted document. The removal is immediate and irreversible.
	// Returns ErrComposerNotFound if no document matches.
	Delete(ctx context.Context, id string) (*domain.Composer, error)
}
