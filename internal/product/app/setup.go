// Package app contains the application setup for the products service.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gtechsltn/products-api/internal/config"
	"github.com/gtechsltn/products-api/internal/platform/web"
	"github.com/gtechsltn/products-api/internal/product/handler"
	"github.com/gtechsltn/products-api/internal/product/service"
	"github.com/gtechsltn/products-api/internal/product/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies wires the configured storage backend into the product
// service. dbPool may be nil when the in-memory backend is selected.
func SetupDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) *Dependencies {
	var productStore store.ProductStore
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		productStore = store.NewPgStore(dbPool)
	default:
		productStore = store.NewInMemoryStore()
	}

	return &Dependencies{
		ProductService: service.NewService(productStore),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the products service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {

	pApi := handler.NewAPI(deps.ProductService, deps.Logger)

	mux := chi.NewRouter()
	mux.Use(web.RequestIDInjector)
	mux.Use(web.StructuredLogger(deps.Logger))
	mux.Use(web.Recoverer(deps.Logger))

	mux.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", pApi.FindAll)
		r.Post("/", pApi.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", pApi.FindByID)
			r.Put("/", pApi.Update)
			r.Delete("/", pApi.DeleteByID)
		})
	})

	mux.Get("/healthz", pApi.HealthCheck)

	return mux
}

// SetupHttpServer creates and configures an HTTP server for the products service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPServer.Port),
		Handler:           mux,
		ReadTimeout:       cfg.HTTPServer.Timeout.Read,
		WriteTimeout:      cfg.HTTPServer.Timeout.Write,
		IdleTimeout:       cfg.HTTPServer.Timeout.Idle,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout.ReadHeader,
		MaxHeaderBytes:    cfg.HTTPServer.MaxHeaderBytes,
	}
	return server
}
