package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zadkiel26/web-420/internal/config"
	"github.com/Zadkiel26/web-420/internal/platform/mongodb"
	"github.com/Zadkiel26/web-420/internal/service/auth"
	"github.com/Zadkiel26/web-420/internal/store"
)

// disconnectTimeout bounds the driver disconnect during shutdown.
const disconnectTimeout = 5 * time.Second

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	client *mongo.Client

	// Stores (using interfaces for proper abstraction)
	composerStore store.ComposerStore
	personStore   store.PersonStore
	customerStore store.CustomerStore
	teamStore     store.TeamStore
	userStore     store.UserStore

	// Password services
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication creates a new application instance with all
// dependencies initialized. It accepts core dependencies like
// configuration, logger, and the store client that must be established
// before application initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	client *mongo.Client,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		client: client,
	}

	db := client.Database(cfg.Database.Name)

	// The user store relies on the unique userName index; declare it
	// before serving requests.
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Initialize stores
	app.composerStore = mongodb.NewMongoComposerStore(db)
	app.personStore = mongodb.NewMongoPersonStore(db)
	app.customerStore = mongodb.NewMongoCustomerStore(db)
	app.teamStore = mongodb.NewMongoTeamStore(db)
	app.userStore = mongodb.NewMongoUserStore(db)

	// Initialize password services
	app.passwordHasher = auth.NewBcryptHasher(auth.HashCost)
	app.passwordVerifier = auth.NewBcryptVerifier()

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		if err := app.client.Disconnect(ctx); err != nil {
			app.logger.Error("Error disconnecting from the document store", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
