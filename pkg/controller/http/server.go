package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/relops-lab/glgate/pkg/domain/interfaces"
	"github.com/relops-lab/glgate/pkg/domain/model"
	"github.com/relops-lab/glgate/pkg/utils/apperr"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates an HTTP server exposing the permission and items
// endpoints
func NewServer(ctx context.Context, addr string, membership interfaces.Membership, items interfaces.Items) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := NewHandler(membership, items)

	router.Get("/", handleIndex)
	router.Get("/health", handleHealth)
	router.Post("/permission", handler.HandlePermission)
	router.Get("/items", handler.HandleItems)

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleIndex describes the service and its endpoints
func handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"service": "glgate",
		"endpoints": map[string]string{
			"/health":     "Health check endpoint",
			"/permission": "POST endpoint to modify user permissions",
			"/items":      "GET endpoint to retrieve issues or merge requests by year",
		},
	})
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError logs the failure and writes its error result. Every failure
// kind maps to the same non-success status.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	apperr.Handle(ctx, err)
	writeJSON(ctx, w, http.StatusBadRequest, model.NewErrorResult(err))
}
