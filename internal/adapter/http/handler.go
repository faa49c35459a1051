package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"

	"gads-manager/internal/config/configs"
	"gads-manager/internal/core/port"
	"gads-manager/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Dashboard routes under /api/v1 require a session cookie issued by the
// Google login flow; the session carries the refresh token every Ads API call
// is made with.
type Handler struct {
	deploy     port.DeployUseCase
	templates  port.TemplateUseCase
	sessions   port.SessionStore
	oauth      *oauth2.Config
	logger     *slog.Logger
	cfg        configs.HTTP
	sessionTTL time.Duration
	now        func() time.Time
	router     chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	deploy port.DeployUseCase,
	templates port.TemplateUseCase,
	sessions port.SessionStore,
	oauth *oauth2.Config,
	logger *slog.Logger,
	cfg configs.HTTP,
	sessionTTL time.Duration,
) *Handler {
	h := &Handler{
		deploy:     deploy,
		templates:  templates,
		sessions:   sessions,
		oauth:      oauth,
		logger:     logger,
		cfg:        cfg,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Get("/google", h.handleLogin)
		r.Get("/google/callback", h.handleCallback)
		r.Post("/logout", h.handleLogout)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/auth/status", h.handleAuthStatus)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)
			r.Post("/campaigns/bulk-deploy", h.handleBulkDeploy)
			r.Get("/campaign-templates", h.handleListTemplates)
			r.Post("/campaign-templates", h.handleSaveTemplate)
			r.Get("/campaign-templates/{id}", h.handleGetTemplate)
			r.Delete("/campaign-templates/{id}", h.handleDeleteTemplate)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
