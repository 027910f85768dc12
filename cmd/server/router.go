package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Zadkiel26/web-420/docs" // registers the generated OpenAPI spec
	"github.com/Zadkiel26/web-420/internal/api"
	apiMiddleware "github.com/Zadkiel26/web-420/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. It accepts the application dependencies to
// create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace) // Add trace IDs for improved error handling

	// Create API handlers using the application's stores
	composerHandler := api.NewComposerHandler(app.composerStore, app.logger)
	personHandler := api.NewPersonHandler(app.personStore, app.logger)
	customerHandler := api.NewCustomerHandler(app.customerStore, app.logger)
	teamHandler := api.NewTeamHandler(app.teamStore, app.logger)
	sessionHandler := api.NewSessionHandler(
		app.userStore,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Composer endpoints
		r.Get("/composers", composerHandler.FindAllComposers)
		r.Get("/composers/{id}", composerHandler.FindComposerByID)
		r.Post("/composers", composerHandler.CreateComposer)
		r.Put("/composers/{id}", composerHandler.UpdateComposerByID)
		r.Delete("/composers/{id}", composerHandler.DeleteComposerByID)

		// Person endpoints
		r.Get("/persons", personHandler.FindAllPersons)
		r.Post("/persons", personHandler.CreatePerson)

		// Customer and invoice endpoints
		r.Post("/customers", customerHandler.CreateCustomer)
		r.Post("/customers/{username}/invoices", customerHandler.CreateInvoiceByUserName)
		r.Get("/customers/{username}/invoices", customerHandler.FindAllInvoicesByUserName)

		// Team endpoints
		r.Post("/teams", teamHandler.CreateTeam)
		r.Get("/teams", teamHandler.FindAllTeams)
		r.Post("/teams/{id}/players", teamHandler.AssignPlayerToTeam)
		r.Get("/teams/{id}/players", teamHandler.FindAllPlayersByTeamID)
		r.Delete("/teams/{id}", teamHandler.DeleteTeamByID)

		// Session endpoints
		r.Post("/signup", sessionHandler.Signup)
		r.Post("/login", sessionHandler.Login)
	})

	// Browsable OpenAPI specification generated from the structured
	// handler comments.
	r.Get("/api-docs/*", httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
