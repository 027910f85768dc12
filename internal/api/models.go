package api

import (
	"github.com/Zadkiel26/web-420/internal/domain"
)

// Request payload structures. Handlers forward these fields as-is;
// required-field enforcement happens at write time in the store, the
// same catch site the document mapper has always used.

// ComposerRequest defines the payload for creating or updating a composer.
type ComposerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RoleRequest is one role entry in a person payload.
type RoleRequest struct {
	Text string `json:"text"`
}

// DependentRequest is one dependent entry in a person payload.
type DependentRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PersonRequest defines the payload for creating a person.
type PersonRequest struct {
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Roles      []RoleRequest      `json:"roles"`
	Dependents []DependentRequest `json:"dependents"`
	BirthDate  string             `json:"birthDate"`
}

// ToDomain converts the payload into a person document.
func (req *PersonRequest) ToDomain() *domain.Person {
	roles := make([]domain.Role, 0, len(req.Roles))
	for _, role := range req.Roles {
		roles = append(roles, domain.Role{Text: role.Text})
	}

	dependents := make([]domain.Dependent, 0, len(req.Dependents))
	for _, dep := range req.Dependents {
		dependents = append(dependents, domain.Dependent{
			FirstName: dep.FirstName,
			LastName:  dep.LastName,
		})
	}

	return &domain.Person{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Roles:      roles,
		Dependents: dependents,
		BirthDate:  req.BirthDate,
	}
}

// CustomerRequest defines the payload for creating a customer.
type CustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
}

// LineItemRequest is one line item in an invoice payload.
type LineItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// InvoiceRequest defines the payload for appending an invoice to a
// customer.
type InvoiceRequest struct {
	Subtotal    float64           `json:"subtotal"`
	Tax         float64           `json:"tax"`
	DateCreated string            `json:"dateCreated"`
	DateShipped string            `json:"dateShipped"`
	LineItems   []LineItemRequest `json:"lineItems"`
}

// ToDomain converts the payload into an invoice document.
func (req *InvoiceRequest) ToDomain() domain.Invoice {
	lineItems := make([]domain.LineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lineItems = append(lineItems, domain.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return domain.Invoice{
		Subtotal:    req.Subtotal,
		Tax:         req.Tax,
		DateCreated: req.DateCreated,
		DateShipped: req.DateShipped,
		LineItems:   lineItems,
	}
}

// TeamRequest defines the payload for creating a team.
type TeamRequest struct {
	Name   string `json:"name"`
	Mascot string `json:"mascot"`
}

// PlayerRequest defines the payload for assigning a player to a team.
type PlayerRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Salary    float64 `json:"salary"`
}

// ToDomain converts the payload into a player document.
func (req *PlayerRequest) ToDomain() domain.Player {
	return domain.Player{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Salary:    req.Salary,
	}
}

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	UserName     string   `json:"userName"`
	Password     string   `json:"password"`
	EmailAddress []string `json:"emailAddress"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}
