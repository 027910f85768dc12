package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

const personsCollection = "persons"

// MongoPersonStore implements the store.PersonStore interface using a
// MongoDB collection as the storage backend.
type MongoPersonStore struct {
	coll *mongo.Collection
}

// NewMongoPersonStore creates a MongoDB implementation of the
// PersonStore interface.
func NewMongoPersonStore(db *mongo.Database) *MongoPersonStore {
	return &MongoPersonStore{
		coll: db.Collection(personsCollection),
	}
}

// Ensure MongoPersonStore implements store.PersonStore interface
var _ store.PersonStore = (*MongoPersonStore)(nil)

// Create implements store.PersonStore.Create
func (s *MongoPersonStore) Create(ctx context.Context, person *domain.Person) error {
	if err := person.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	person.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, person); err != nil {
		return store.NewStoreError("person", "create", "insert failed", err)
	}
	return nil
}

// FindAll implements store.PersonStore.FindAll
func (s *MongoPersonStore) FindAll(ctx context.Context) ([]domain.Person, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, store.NewStoreError("person", "find", "query failed", err)
	}

	persons := []domain.Person{}
	if err := cursor.All(ctx, &persons); err != nil {
		return nil, store.NewStoreError("person", "find", "cursor decode failed", err)
	}
	return persons, nil
}
