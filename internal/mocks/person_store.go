package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

// MockPersonStore implements store.PersonStore for testing
type MockPersonStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, person *domain.Person) error
	FindAllFn func(ctx context.Context) ([]domain.Person, error)

	// Data for default implementation
	Persons     []*domain.Person
	CreateError error
	FindError   error
}

// NewMockPersonStore creates a new mock store with initialized defaults
func NewMockPersonStore() *MockPersonStore {
	return &MockPersonStore{}
}

// Create implements the PersonStore interface
func (m *MockPersonStore) Create(ctx context.Context, person *domain.Person) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, person)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := person.Validate(); err != nil {
		return store.NewStoreError("person", "create", "validation failed",
			store.ErrInvalidEntity)
	}

	person.ID = primitive.NewObjectID()
	m.Persons = append(m.Persons, person)
	return nil
}

// FindAll implements the PersonStore interface
func (m *MockPersonStore) FindAll(ctx context.Context) ([]domain.Person, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}

	if m.FindError != nil {
		return nil, m.FindError
	}

	persons := []domain.Person{}
	for _, person := range m.Persons {
		persons = append(persons, *person)
	}
	return persons, nil
}
