package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a persisted user account. Password holds the bcrypt hash of
// the signup password and is never serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserName     string             `bson:"userName"      json:"userName" validate:"required"`
	Password     string             `bson:"password"      json:"-"        validate:"required"`
	EmailAddress []string           `bson:"emailAddress"  json:"emailAddress"`
}

// NewUser creates a User from the given fields. hashedPassword must
// already be hashed; the domain layer never sees plaintext passwords.
func NewUser(userName, hashedPassword string, emailAddress []string) *User {
	return &User{
		UserName:     userName,
		Password:     hashedPassword,
		EmailAddress: emailAddress,
	}
}

// Validate checks the user against its schema rules.
func (u *User) Validate() error {
	return validateStruct(u)
}
