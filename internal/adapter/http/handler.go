package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"recruitads/internal/core/port"
	"recruitads/internal/metrics"
)

// Options tune the cross-cutting middleware of the handler.
type Options struct {
	AllowedOrigins []string
	// RatePerSecond and Burst limit requests per client address. Zero
	// disables limiting.
	RatePerSecond float64
	Burst         int
	Metrics       *metrics.Metrics
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// that exposes the recommendation use case as JSON endpoints on a
// chi.Router.
type Handler struct {
	svc     port.RecommendUseCase
	logger  *slog.Logger
	metrics *metrics.Metrics
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.RecommendUseCase, logger *slog.Logger, opts Options) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, logger: logger, metrics: opts.Metrics}
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.observe)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", opts.Metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if opts.RatePerSecond > 0 {
			r.Use(newClientLimiter(opts.RatePerSecond, opts.Burst).middleware)
		}
		r.Post("/recommendations", h.handleRecommend)
		r.Get("/stats", h.handleStats)
		r.Get("/roles", h.handleRoles)
		r.Get("/industries", h.handleIndustries)
		r.Post("/admin/reindex", h.handleReindex)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
