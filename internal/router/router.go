package router

import (
	"net/http"

	"mini-orders/internal/config"
	"mini-orders/internal/handler"
	"mini-orders/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	cfg *config.Config,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Request ID first so every later middleware can log it
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/item", catalogHandler.Create)
	r.Get("/items", catalogHandler.List)

	r.Post("/order", orderHandler.Create)
	r.Get("/order/{id}", orderHandler.Get)
	r.Get("/order/status/{id}", orderHandler.GetStatus)
	r.With(middleware.BasicAuth(cfg.Auth.Username, cfg.Auth.Password, logger)).
		Put("/order/status/{id}", orderHandler.UpdateStatus)
	r.Put("/order/update/{id}", orderHandler.Update)
	r.Delete("/order/cancel/{id}", orderHandler.Cancel)

	return r
}
