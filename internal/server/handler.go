// Package server is catalogd: a small fixture server exposing the
// coffee catalog the storefront client consumes. It replaces the
// json-server instance the original storefront assumed on port 3000.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/balcao-cafe/balcao/internal/model"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Handler serves the catalog routes.
type Handler struct {
	log   *zap.Logger
	menu  []model.Product
	byKey map[model.ID]model.Product
}

// NewHandler returns a handler serving the seeded menu.
func NewHandler(log *zap.Logger) *Handler {
	menu := seedMenu()
	byKey := make(map[model.ID]model.Product, len(menu))
	for _, p := range menu {
		byKey[p.ID] = p
	}
	return &Handler{log: log, menu: menu, byKey: byKey}
}

// Routes builds the catalogd router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger(h.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/healthz", h.Health)
	r.Get("/coffee", h.ListCoffee)
	r.Get("/coffee/{coffeeId}", h.GetCoffee)
	return r
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListCoffee handles GET /coffee and returns the full catalog.
func (h *Handler) ListCoffee(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.menu)
}

// GetCoffee handles GET /coffee/{coffeeId}.
func (h *Handler) GetCoffee(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "coffeeId"))
	p, ok := h.byKey[id]
	if !ok {
		h.log.Info("coffee not found", zap.String("coffeeId", string(id)))
		h.writeError(w, http.StatusNotFound, "Coffee not found")
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		h.log.Error("failed to encode error response", zap.Error(err))
	}
}
