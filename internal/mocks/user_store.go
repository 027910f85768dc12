package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, user *domain.User) error
	FindByUserNameFn func(ctx context.Context, userName string) (*domain.User, error)

	// Data for default implementation, keyed by userName
	Users       map[string]*domain.User
	CreateError error
	FindError   error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.UserName]; exists {
		return store.ErrUserNameExists
	}

	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "create", "validation failed",
			store.ErrInvalidEntity)
	}

	user.ID = primitive.NewObjectID()
	m.Users[user.UserName] = user
	return nil
}

// FindByUserName implements the UserStore interface
func (m *MockUserStore) FindByUserName(
	ctx context.Context,
	userName string,
) (*domain.User, error) {
	if m.FindByUserNameFn != nil {
		return m.FindByUserNameFn(ctx, userName)
	}

	if m.FindError != nil {
		return nil, m.FindError
	}

	user, exists := m.Users[userName]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}
