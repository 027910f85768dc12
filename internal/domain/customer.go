package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineItem is a single line item on an invoice.
type LineItem struct {
	Name     string  `bson:"name"     json:"name"`
	Price    float64 `bson:"price"    json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Invoice is an invoice embedded in a customer document.
type Invoice struct {
	Subtotal    float64    `bson:"subtotal"    json:"subtotal"`
	Tax         float64    `bson:"tax"         json:"tax"`
	DateCreated string     `bson:"dateCreated" json:"dateCreated"`
	DateShipped string     `bson:"dateShipped" json:"dateShipped"`
	LineItems   []LineItem `bson:"lineItems"   json:"lineItems"`
}

// Customer is a persisted customer document. Invoices are owned by the
// customer and only ever mutated by appending.
type Customer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName string             `bson:"firstName"     json:"firstName"`
	LastName  string             `bson:"lastName"      json:"lastName"`
	UserName  string             `bson:"userName"      json:"userName"`
	Invoices  []Invoice          `bson:"invoices"      json:"invoices"`
}

// NewCustomer creates a Customer with an empty invoice collection.
func NewCustomer(firstName, lastName, userName string) *Customer {
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		UserName:  userName,
		Invoices:  []Invoice{},
	}
}

// Validate checks the customer against its schema rules. The customer
// schema declares no required fields, so this only exists to keep the
// store's create path uniform across entities.
func (c *Customer) Validate() error {
	return validateStruct(c)
}
