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

const customersCollection = "customers"

// MongoCustomerStore implements the store.CustomerStore interface
// using a MongoDB collection as the storage backend.
type MongoCustomerStore struct {
	coll *mongo.Collection
}

// NewMongoCustomerStore creates a MongoDB implementation of the
// CustomerStore interface.
func NewMongoCustomerStore(db *mongo.Database) *MongoCustomerStore {
	return &MongoCustomerStore{
		coll: db.Collection(customersCollection),
	}
}

// Ensure MongoCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*MongoCustomerStore)(nil)

// Create implements store.CustomerStore.Create
func (s *MongoCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	customer.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, customer); err != nil {
		return store.NewStoreError("customer", "create", "insert failed", err)
	}
	return nil
}

// FindByUserName implements store.CustomerStore.FindByUserName
func (s *MongoCustomerStore) FindByUserName(ctx context.Context, userName string) (*domain.Customer, error) {
	var customer domain.Customer
	err := s.coll.FindOne(ctx, bson.M{"userName": userName}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrCustomerNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("customer", "find", "query failed", err)
	}
	return &customer, nil
}

// AppendInvoice implements store.CustomerStore.AppendInvoice. The push
// itself is a single atomic update on the server; there is no
// optimistic concurrency check across the preceding lookup.
func (s *MongoCustomerStore) AppendInvoice(
	ctx context.Context,
	userName string,
	invoice domain.Invoice,
) (*domain.Customer, error) {
	update := bson.M{"$push": bson.M{"invoices": invoice}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var customer domain.Customer
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"userName": userName}, update, opts).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrCustomerNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("customer", "update", "invoice push failed", err)
	}
	return &customer, nil
}
