//go:build integration

package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zadkiel26/web-420/internal/config"
)

// testDatabase connects to the mongod named by WEB420_TEST_MONGO_URI
// and hands back a throwaway database that is dropped on cleanup. Tests
// skip when the variable is unset so the unit suite stays hermetic.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("WEB420_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("WEB420_TEST_MONGO_URI not set; skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := Connect(ctx, config.DatabaseConfig{
		URI:  uri,
		Name: "unused",
	})
	require.NoError(t, err)

	// A fresh database per test keeps runs independent
	db := client.Database("web420_test_" + primitive.NewObjectID().Hex())

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()

		if err := db.Drop(cleanupCtx); err != nil {
			t.Logf("failed to drop test database: %v", err)
		}
		if err := client.Disconnect(cleanupCtx); err != nil {
			t.Logf("failed to disconnect test client: %v", err)
		}
	})

	return db
}
