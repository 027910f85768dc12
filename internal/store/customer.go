package store

import (
	"context"

	"github.com/Zadkiel26/web-420/internal/domain"
)

// CustomerStore defines the interface for customer persistence.
// Customers are looked up by userName by convention; invoices live
// inside the customer document and are only ever appended.
type CustomerStore interface {
	// Create saves a new customer with an empty invoice collection.
	Create(ctx context.Context, customer *domain.Customer) error

	// FindByUserName retrieves a customer by userName.
	// Returns ErrCustomerNotFound if no document matches.
	FindByUserName(ctx context.Context, userName string) (*domain.Customer, error)

	// AppendInvoice pushes an invoice onto the customer's invoice
	// collection and returns the updated document. Prior invoices are
	// left untouched.
	// Returns ErrCustomerNotFound if no document matches.
	AppendInvoice(ctx context.Context, userName string, invoice domain.Invoice) (*domain.Customer, error)
}
