package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a single role entry on a person document.
type Role struct {
	Text string `bson:"text" json:"text"`
}

// Dependent is a single dependent entry on a person document.
type Dependent struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName"  json:"lastName"`
}

// Person is a persisted person document. Roles and dependents are
// embedded collections owned by the person; they have no independent
// lifecycle.
type Person struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName  string             `bson:"firstName"     json:"firstName" validate:"required"`
	LastName   string             `bson:"lastName"      json:"lastName"  validate:"required"`
	Roles      []Role             `bson:"roles"         json:"roles"`
	Dependents []Dependent        `bson:"dependents"    json:"dependents"`
	BirthDate  string             `bson:"birthDate"     json:"birthDate"`
}

// Validate checks the person against its schema rules.
func (p *Person) Validate() error {
	return validateStruct(p)
}
