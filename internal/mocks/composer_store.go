package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

// MockComposerStore implements store.ComposerStore for testing
type MockComposerStore struct {
	// Function fields for customizable behavior
	CreateFn   func(ctx context.Context, composer *domain.Composer) error
	FindAllFn  func(ctx context.Context) ([]domain.Composer, error)
	FindByIDFn func(ctx context.Context, id string) (*domain.Composer, error)
	UpdateFn   func(ctx context.Context, id, firstName, lastName string) (*domain.Composer, error)
	DeleteFn   func(ctx context.Context, id string) (*domain.Composer, error)

	// Data for default implementation, keyed by hex document ID
	Composers   map[string]*domain.Composer
	CreateError error
	FindError   error
}

// NewMockComposerStore creates a new mock store with initialized defaults
func NewMockComposerStore() *MockComposerStore {
	return &MockComposerStore{
		Composers: make(map[string]*domain.Composer),
	}
}

// Create implements the ComposerStore interface
func (m *MockComposerStore) Create(ctx context.Context, composer *domain.Composer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, composer)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := composer.Validate(); err != nil {
		return store.NewStoreError("composer", "create", "validation failed",
			store.ErrInvalidEntity)
	}

	composer.ID = primitive.NewObjectID()
	m.Composers[composer.ID.Hex()] = composer
	return nil
}

// FindAll implements the ComposerStore interface
func (m *MockComposerStore) FindAll(ctx context.Context) ([]domain.Composer, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}

	if m.FindError != nil {
		return nil, m.FindError
	}

	composers := []domain.Composer{}
	for _, composer := range m.Composers {
		composers = append(composers, *composer)
	}
	return composers, nil
}

// FindByID implements the ComposerStore interface
func (m *MockComposerStore) FindByID(ctx context.Context, id string) (*domain.Composer, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	if m.FindError != nil {
		return nil, m.FindError
	}

	composer, exists := m.Composers[id]
	if !exists {
		return nil, store.ErrComposerNotFound
	}
	return composer, nil
}

// Update implements the ComposerStore interface
func (m *MockComposerStore) Update(
	ctx context.Context,
	id, firstName, lastName string,
) (*domain.Composer, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, firstName, lastName)
	}

	composer, exists := m.Composers[id]
	if !exists {
		return nil, store.ErrComposerNotFound
	}

	composer.FirstName = firstName
	composer.LastName = lastName
	return composer, nil
}

// Delete implements the ComposerStore interface
func (m *MockComposerStore) Delete(ctx context.Context, id string) (*domain.Composer, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	composer, exists := m.Composers[id]
	if !exists {
		return nil, store.ErrComposerNotFound
	}

	delete(m.Composers, id)
	return composer, nil
}
