// Package handler exposes the dashboard list pages over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rezkam/rentdesk/internal/application/dashboard"
	"github.com/rezkam/rentdesk/internal/domain"
	"github.com/rezkam/rentdesk/internal/urlstate"
)

// Dashboard is the application service the handlers drive.
type Dashboard interface {
	Kinds() []domain.Kind
	Show(ctx context.Context, session string, kind domain.Kind, loc urlstate.Location) (dashboard.View, error)
	Refresh(ctx context.Context, session string, kind domain.Kind) error
	Create(ctx context.Context, session string, kind domain.Kind, payload []byte) (any, error)
	Update(ctx context.Context, session string, kind domain.Kind, id string, payload []byte) (any, error)
	SetStatus(ctx context.Context, session string, kind domain.Kind, id, status string) (any, error)
	Delete(ctx context.Context, session string, kind domain.Kind, id string) error
}

var _ Dashboard = (*dashboard.Service)(nil)

// ListHandler adapts HTTP requests to dashboard calls.
type ListHandler struct {
	dashboard Dashboard
}

// NewListHandler creates a new HTTP API handler.
func NewListHandler(d Dashboard) *ListHandler {
	return &ListHandler{dashboard: d}
}

// Routes returns the API router. It expects the session middleware to run
// before it.
//
//	GET    /kinds
//	GET    /{kind}
//	POST   /{kind}
//	POST   /{kind}/refresh
//	PUT    /{kind}/{id}
//	PUT    /{kind}/{id}/status
//	DELETE /{kind}/{id}
func (h *ListHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/kinds", h.Kinds)
	r.Route("/{kind}", func(r chi.Router) {
		r.Get("/", h.Show)
		r.Post("/", h.Create)
		r.Post("/refresh", h.Refresh)
		r.Put("/{id}", h.Update)
		r.Put("/{id}/status", h.SetStatus)
		r.Delete("/{id}", h.Delete)
	})
	return r
}
