package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

const usersCollection = "users"

// MongoUserStore implements the store.UserStore interface using a
// MongoDB collection as the storage backend.
type MongoUserStore struct {
	coll *mongo.Collection
}

// NewMongoUserStore creates a MongoDB implementation of the UserStore
// interface.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{
		coll: db.Collection(usersCollection),
	}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Create implements store.UserStore.Create. The unique index on
// userName backs the signup collision check; a duplicate-key rejection
// maps to ErrUserNameExists.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	user.ID = primitive.NewObjectID()
	_, err := s.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrUserNameExists
	}
	if err != nil {
		return store.NewStoreError("user", "create", "insert failed", err)
	}
	return nil
}

// FindByUserName implements store.UserStore.FindByUserName
func (s *MongoUserStore) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"userName": userName}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("user", "find", "query failed", err)
	}
	return &user, nil
}
