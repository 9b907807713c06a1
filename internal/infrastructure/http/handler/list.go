package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rezkam/rentdesk/internal/domain"
	"github.com/rezkam/rentdesk/internal/infrastructure/http/middleware"
	"github.com/rezkam/rentdesk/internal/infrastructure/http/response"
	"github.com/rezkam/rentdesk/internal/urlstate"
)

// StatusRequest is the body of PUT /{kind}/{id}/status.
type StatusRequest struct {
	Status string `json:"status"`
}

// KindsResponse lists the managed entity kinds.
type KindsResponse struct {
	Kinds []domain.Kind `json:"kinds"`
}

// Kinds handles GET /kinds.
func (h *ListHandler) Kinds(w http.ResponseWriter, r *http.Request) {
	response.OK(w, KindsResponse{Kinds: h.dashboard.Kinds()})
}

// Show handles GET /{kind}. The query string carries the list state; when
// it has to be corrected the canonical URL is sent in the HX-Replace-Url
// header.
func (h *ListHandler) Show(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}

	view, err := h.dashboard.Show(r.Context(), middleware.SessionID(r.Context()), kind, urlstate.NewResponseLocation(w, r))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, view)
}

// Refresh handles POST /{kind}/refresh and returns the reloaded page.
func (h *ListHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}
	session := middleware.SessionID(r.Context())

	if err := h.dashboard.Refresh(r.Context(), session, kind); err != nil {
		slog.ErrorContext(r.Context(), "failed to refresh list via HTTP",
			"kind", kind,
			"error", err)
		response.FromDomainError(w, r, err)
		return
	}

	view, err := h.dashboard.Show(r.Context(), session, kind, urlstate.NewResponseLocation(w, r))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, view)
}

// Create handles POST /{kind}.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}
	payload, ok := readBody(w, r)
	if !ok {
		return
	}

	created, err := h.dashboard.Create(r.Context(), middleware.SessionID(r.Context()), kind, payload)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to create entity via HTTP",
			"kind", kind,
			"error", err)
		response.FromDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "entity created via HTTP", "kind", kind)
	response.Created(w, created)
}

// Update handles PUT /{kind}/{id}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	payload, ok := readBody(w, r)
	if !ok {
		return
	}

	updated, err := h.dashboard.Update(r.Context(), middleware.SessionID(r.Context()), kind, id, payload)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to update entity via HTTP",
			"kind", kind,
			"id", id,
			"error", err)
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, updated)
}

// SetStatus handles PUT /{kind}/{id}/status.
func (h *ListHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}
	if req.Status == "" {
		response.ValidationError(w, "status", "required field missing")
		return
	}

	updated, err := h.dashboard.SetStatus(r.Context(), middleware.SessionID(r.Context()), kind, id, req.Status)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to set status via HTTP",
			"kind", kind,
			"id", id,
			"status", req.Status,
			"error", err)
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, updated)
}

// Delete handles DELETE /{kind}/{id}.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	if err := h.dashboard.Delete(r.Context(), middleware.SessionID(r.Context()), kind, id); err != nil {
		slog.ErrorContext(r.Context(), "failed to delete entity via HTTP",
			"kind", kind,
			"id", id,
			"error", err)
		response.FromDomainError(w, r, err)
		return
	}
	response.NoContent(w)
}

func kindParam(w http.ResponseWriter, r *http.Request) (domain.Kind, bool) {
	kind, err := domain.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return "", false
	}
	return kind, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "failed to read request body")
		return nil, false
	}
	return payload, true
}
