package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

// NewRouter mounts every route on a chi router with request ids, real IPs,
// access logging, panic recovery and a per-request timeout.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.NotFound(h.makeHandler(func(w http.ResponseWriter, r *http.Request) error {
		return newHTTPError(http.StatusNotFound, "not found", nil)
	}))
	r.MethodNotAllowed(h.makeHandler(func(w http.ResponseWriter, r *http.Request) error {
		return newHTTPError(http.StatusMethodNotAllowed, "method not allowed", nil)
	}))

	r.Get("/healthz", h.makeHandler(h.healthz))

	r.Post("/register", h.makeHandler(h.register))
	r.Get("/all", h.makeHandler(h.listUsers))

	adminOnly := func(next AuthedHandler) http.HandlerFunc {
		return h.makeHandler(h.requireAuth(requireRole(next, models.RoleAdmin, models.RoleSuperAdmin)))
	}

	r.Route("/clothes", func(r chi.Router) {
		r.Get("/", h.makeHandler(h.requireAuth(h.listClothes)))
		r.Post("/", adminOnly(h.createClothes))
		r.Post("/photos", adminOnly(h.createPhotoUpload))
	})

	return r
}
