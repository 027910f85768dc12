package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

// MockTeamStore implements store.TeamStore for testing
type MockTeamStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, team *domain.Team) error
	FindAllFn      func(ctx context.Context) ([]domain.Team, error)
	FindByIDFn     func(ctx context.Context, id string) (*domain.Team, error)
	AppendPlayerFn func(ctx context.Context, id string, player domain.Player) (*domain.Team, error)
	DeleteFn       func(ctx context.Context, id string) (*domain.Team, error)

	// Data for default implementation, keyed by hex document ID
	Teams       map[string]*domain.Team
	CreateError error
	FindError   error
}

// NewMockTeamStore creates a new mock store with initialized defaults
func NewMockTeamStore() *MockTeamStore {
	return &MockTeamStore{
		Teams: make(map[string]*domain.Team),
	}
}

// Create implements the TeamStore interface
func (m *MockTeamStore) Create(ctx context.Context, team *domain.Team) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, team)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := team.Validate(); err != nil {
		return store.NewStoreError("team", "create", "validation failed",
			store.ErrInvalidEntity)
	}

	team.ID = primitive.NewObjectID()
	m.Teams[team.ID.Hex()] = team
	return nil
}

// FindAll implements the TeamStore interface
func (m *MockTeamStore) FindAll(ctx context.Context) ([]domain.Team, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}

	if m.FindError != nil {
		return nil, m.FindError
	}

	teams := []domain.Team{}
	for _, team := range m.Teams {
		teams = append(teams, *team)
	}
	return teams, nil
}

// FindByID implements the TeamStore interface
func (m *MockTeamStore) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	if m.FindError != nil {
		return nil, m.FindError
	}

	team, exists := m.Teams[id]
	if !exists {
		return nil, store.ErrTeamNotFound
	}
	return team, nil
}

// AppendPlayer implements the TeamStore interface
func (m *MockTeamStore) AppendPlayer(
	ctx context.Context,
	id string,
	player domain.Player,
) (*domain.Team, error) {
	if m.AppendPlayerFn != nil {
		return m.AppendPlayerFn(ctx, id, player)
	}

	team, exists := m.Teams[id]
	if !exists {
		return nil, store.ErrTeamNotFound
	}

	team.Players = append(team.Players, player)
	return team, nil
}

// Delete implements the TeamStore interface
func (m *MockTeamStore) Delete(ctx context.Context, id string) (*domain.Team, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	team, exists := m.Teams[id]
	if !exists {
		return nil, store.ErrTeamNotFound
	}

	delete(m.Teams, id)
	return team, nil
}
