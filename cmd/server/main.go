// Package main implements the entry point for the WEB 420 RESTful API
// server, which exposes the composer, person, customer, team, and
// user/session endpoints over a MongoDB document store.
package main

import (
	"context"
	"log"
	"os"

	"github.com/Zadkiel26/web-420/internal/config"
	"github.com/Zadkiel26/web-420/internal/platform/logger"
	"github.com/Zadkiel26/web-420/internal/platform/mongodb"
)

//	@title			WEB 420 RESTful APIs
//	@version		1.0.0
//	@description	CRUD REST endpoints for composers, persons, customers,
//	@description	teams, and user sessions.
//	@BasePath		/api
func main() {
	// Load configuration before anything else; there is no logger yet,
	// so failures go through the standard log package.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	ctx := context.Background()

	client, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		appLogger.Error("Failed to connect to the document store", "error", err)
		os.Exit(1)
	}

	app, err := newApplication(ctx, cfg, appLogger, client)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
