package store

import (
	"context"

	"github.com/Zadkiel26/web-420/internal/domain"
)

// TeamStore defines the interface for team persistence. Players live
// inside the team document and are only ever appended.
type TeamStore interface {
	// Create saves a new team with an empty player roster.
	Create(ctx context.Context, team *domain.Team) error

	// FindAll retrieves every team document.
	FindAll(ctx context.Context) ([]domain.Team, error)

	// FindByID retrieves a team by its document ID.
	// Returns ErrTeamNotFound if no document matches.
	FindByID(ctx context.Context, id string) (*domain.Team, error)

	// AppendPlayer pushes a player onto the team's roster and returns
	// the updated document.
	// Returns ErrTeamNotFound if no document matches.
	AppendPlayer(ctx context.Context, id string, player domain.Player) (*domain.Team, error)

	// Delete removes a team by its document ID and returns the deleted
	// document.
	// Returns ErrTeamNotFound if no document matches.
	Delete(ctx context.Context, id string) (*domain.Team, error)
}
