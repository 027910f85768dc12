package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Player is a player embedded in a team document.
type Player struct {
	FirstName string  `bson:"firstName" json:"firstName"`
	LastName  string  `bson:"lastName"  json:"lastName"`
	Salary    float64 `bson:"salary"    json:"salary"`
}

// Team is a persisted team document. Players are owned by the team and
// only ever mutated by appending.
type Team struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name"          json:"name"`
	Mascot  string             `bson:"mascot"        json:"mascot"`
	Players []Player           `bson:"players"       json:"players"`
}

// NewTeam creates a Team with an empty player roster.
func NewTeam(name, mascot string) *Team {
	return &Team{
		Name:    name,
		Mascot:  mascot,
		Players: []Player{},
	}
}

// Validate checks the team against its schema rules.
func (t *Team) Validate() error {
	return validateStruct(t)
}
