package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

// MockCustomerStore implements store.CustomerStore for testing
type MockCustomerStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, customer *domain.Customer) error
	FindByUserNameFn func(ctx context.Context, userName string) (*domain.Customer, error)
	AppendInvoiceFn  func(ctx context.Context, userName string, invoice domain.Invoice) (*domain.Customer, error)

	// Data for default implementation, keyed by userName
	Customers   map[string]*domain.Customer
	CreateError error
	FindError   error
}

// NewMockCustomerStore creates a new mock store with initialized defaults
func NewMockCustomerStore() *MockCustomerStore {
	return &MockCustomerStore{
		Customers: make(map[string]*domain.Customer),
	}
}

// Create implements the CustomerStore interface
func (m *MockCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, customer)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := customer.Validate(); err != nil {
		return store.NewStoreError("customer", "create", "validation failed",
			store.ErrInvalidEntity)
	}

	customer.ID = primitive.NewObjectID()
	m.Customers[customer.UserName] = customer
	return nil
}

// FindByUserName implements the CustomerStore interface
func (m *MockCustomerStore) FindByUserName(
	ctx context.Context,
	userName string,
) (*domain.Customer, error) {
	if m.FindByUserNameFn != nil {
		return m.FindByUserNameFn(ctx, userName)
	}

	if m.FindError != nil {
		return nil, m.FindError
	}

	customer, exists := m.Customers[userName]
	if !exists {
		return nil, store.ErrCustomerNotFound
	}
	return customer, nil
}

// AppendInvoice implements the CustomerStore interface
func (m *MockCustomerStore) AppendInvoice(
	ctx context.Context,
	userName string,
	invoice domain.Invoice,
) (*domain.Customer, error) {
	if m.AppendInvoiceFn != nil {
		return m.AppendInvoiceFn(ctx, userName, invoice)
	}

	customer, exists := m.Customers[userName]
	if !exists {
		return nil, store.ErrCustomerNotFound
	}

	customer.Invoices = append(customer.Invoices, invoice)
	return customer, nil
}
