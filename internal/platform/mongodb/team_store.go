package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

const teamsCollection = "teams"

// MongoTeamStore implements the store.TeamStore interface using a
// MongoDB collection as the storage backend.
type MongoTeamStore struct {
	coll *mongo.Collection
}

// NewMongoTeamStore creates a MongoDB implementation of the TeamStore
// interface.
func NewMongoTeamStore(db *mongo.Database) *MongoTeamStore {
	return &MongoTeamStore{
		coll: db.Collection(teamsCollection),
	}
}

// Ensure MongoTeamStore implements store.TeamStore interface
var _ store.TeamStore = (*MongoTeamStore)(nil)

// Create implements store.TeamStore.Create
func (s *MongoTeamStore) Create(ctx context.Context, team *domain.Team) error {
	if err := team.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	team.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, team); err != nil {
		return store.NewStoreError("team", "create", "insert failed", err)
	}
	return nil
}

// FindAll implements store.TeamStore.FindAll
func (s *MongoTeamStore) FindAll(ctx context.Context) ([]domain.Team, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, store.NewStoreError("team", "find", "query failed", err)
	}

	teams := []domain.Team{}
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, store.NewStoreError("team", "find", "cursor decode failed", err)
	}
	return teams, nil
}

// FindByID implements store.TeamStore.FindByID
func (s *MongoTeamStore) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.NewStoreError("team", "find", "malformed document id", err)
	}

	var team domain.Team
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&team)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrTeamNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("team", "find", "query failed", err)
	}
	return &team, nil
}

// AppendPlayer implements store.TeamStore.AppendPlayer. The push itself
// is a single atomic update on the server; there is no optimistic
// concurrency check across the preceding lookup.
func (s *MongoTeamStore) AppendPlayer(
	ctx context.Context,
	id string,
	player domain.Player,
) (*domain.Team, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.NewStoreError("team", "update", "malformed document id", err)
	}

	update := bson.M{"$push": bson.M{"players": player}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var team domain.Team
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&team)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrTeamNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("team", "update", "player push failed", err)
	}
	return &team, nil
}

// Delete implements store.TeamStore.Delete
func (s *MongoTeamStore) Delete(ctx context.Context, id string) (*domain.Team, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.NewStoreError("team", "delete", "malformed document id", err)
	}

	var team domain.Team
	err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&team)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrTeamNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("team", "delete", "delete failed", err)
	}
	return &team, nil
}
