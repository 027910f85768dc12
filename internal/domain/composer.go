package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Composer is a persisted composer document.
type Composer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName string             `bson:"firstName"     json:"firstName" validate:"required"`
	LastName  string             `bson:"lastName"      json:"lastName"  validate:"required"`
}

// NewComposer creates a Composer from the given fields. The document ID
// is assigned by the store on insert.
func NewComposer(firstName, lastName string) *Composer {
	return &Composer{
		FirstName: firstName,
		LastName:  lastName,
	}
}

// Validate checks the composer against its schema rules.
func (c *Composer) Validate() error {
	return validateStruct(c)
}
