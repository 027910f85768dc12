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

const composersCollection = "composers"

// MongoComposerStore implements the store.ComposerStore interface
// using a MongoDB collection as the storage backend.
type MongoComposerStore struct {
	coll *mongo.Collection
}

// NewMongoComposerStore creates a MongoDB implementation of the
// ComposerStore interface. The database handle should be initialized
// and managed by the caller.
func NewMongoComposerStore(db *mongo.Database) *MongoComposerStore {
	return &MongoComposerStore{
		coll: db.Collection(composersCollection),
	}
}

// Ensure MongoComposerStore implements store.ComposerStore interface
var _ store.ComposerStore = (*MongoComposerStore)(nil)

// Create implements store.ComposerStore.Create
func (s *MongoComposerStore) Create(ctx context.Context, composer *domain.Composer) error {
	if err := composer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	composer.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, composer); err != nil {
		return store.NewStoreError("composer", "create", "insert failed", err)
	}
	return nil
}

// FindAll implements store.ComposerStore.FindAll
func (s *MongoComposerStore) FindAll(ctx context.Context) ([]domain.Composer, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, store.NewStoreError("composer", "find", "query failed", err)
	}

	composers := []domain.Composer{}
	if err := cursor.All(ctx, &composers); err != nil {
		return nil, store.NewStoreError("composer", "find", "cursor decode failed", err)
	}
	return composers, nil
}

// FindByID implements store.ComposerStore.FindByID
func (s *MongoComposerStore) FindByID(ctx context.Context, id string) (*domain.Composer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.NewStoreError("composer", "find", "malformed document id", err)
	}

	var composer domain.Composer
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&composer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrComposerNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("composer", "find", "query failed", err)
	}
	return &composer, nil
}

// Update implements store.ComposerStore.Update
func (s *MongoComposerStore) Update(ctx context.Context, id, firstName, lastName string) (*domain.Composer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.NewStoreError("composer", "update", "malformed document id", err)
	}

	update := bson.M{"$set": bson.M{
		"firstName": firstName,
		"lastName":  lastName,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var composer domain.Composer
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&composer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrComposerNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("composer", "update", "update failed", err)
	}
	return &composer, nil
}

// Delete implements store.ComposerStore.Delete
func (s *MongoComposerStore) Delete(ctx context.Context, id string) (*domain.Composer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.NewStoreError("composer", "delete", "malformed document id", err)
	}

	var composer domain.Composer
	err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&composer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrComposerNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("composer", "delete", "delete failed", err)
	}
	return &composer, nil
}
