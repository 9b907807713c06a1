package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/rentdesk/internal/domain"
)

func leadID(l domain.Lead) string { return l.ID }

func newResource(t *testing.T, h http.Handler) *Resource[domain.Lead] {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{
		BaseURL:    srv.URL + "/v1/",
		Token:      "secret",
		RateLimit:  1000,
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
	})
	require.NoError(t, err)
	return NewResource(c, domain.KindLeads, leadID)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestResource_CRUD(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/v1/leads", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, []domain.Lead{{Record: domain.Record{ID: "l1"}, Name: "Ada"}})
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var l domain.Lead
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&l))
			l.Source = "web"
			writeJSON(w, http.StatusCreated, l)
		})
		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "l1", chi.URLParam(req, "id"))
			w.WriteHeader(http.StatusNoContent)
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
	res := newResource(t, r)
	ctx := context.Background()

	leads, err := res.List(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Ada", leads[0].Name)

	created, err := res.Create(ctx, domain.Lead{Record: domain.Record{ID: "l2"}, Name: "Grace"})
	require.NoError(t, err)
	assert.Equal(t, "web", created.Source, "the backend representation wins")

	sent := domain.Lead{Record: domain.Record{ID: "l1"}, Name: "Ada L."}
	updated, err := res.Update(ctx, sent)
	require.NoError(t, err)
	assert.Equal(t, sent, updated, "an empty response keeps what was sent")

	require.NoError(t, res.Delete(ctx, "l1"))
}

func TestResource_EmptyList(t *testing.T) {
	res := newResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))

	leads, err := res.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, leads)
	assert.Empty(t, leads)
}

func TestResource_ErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusNotFound, want: domain.ErrNotFound},
		{status: http.StatusBadRequest, want: domain.ErrInvalidPayload},
		{status: http.StatusUnprocessableEntity, want: domain.ErrInvalidPayload},
		{status: http.StatusConflict, want: domain.ErrInvalidID},
		{status: http.StatusForbidden, want: domain.ErrUpstream},
		{status: http.StatusBadGateway, want: domain.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			res := newResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))

			err := res.Delete(context.Background(), "l1")

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResource_RetriesIdempotentRequests(t *testing.T) {
	var calls atomic.Int32
	res := newResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, []domain.Lead{})
	}))

	_, err := res.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestResource_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	res := newResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))

	_, err := res.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, int32(3), calls.Load(), "one attempt plus two retries")
}

func TestResource_DoesNotRetryCreate(t *testing.T) {
	var calls atomic.Int32
	res := newResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))

	_, err := res.Create(context.Background(), domain.Lead{Record: domain.Record{ID: "l9"}})

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, int32(1), calls.Load())
}

func TestResource_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	res := newResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))

	_, err := res.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestResource_DoesNotRetryMalformedBody(t *testing.T) {
	var calls atomic.Int32
	res := newResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":`))
	}))

	_, err := res.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, int32(1), calls.Load())
}

func TestResource_MissingID(t *testing.T) {
	res := newResource(t, http.NotFoundHandler())

	_, err := res.Update(context.Background(), domain.Lead{})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	assert.ErrorIs(t, res.Delete(context.Background(), ""), domain.ErrInvalidID)
}

func TestResource_CancelledContext(t *testing.T) {
	res := newResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Lead{})
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := res.List(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "://"})
	assert.Error(t, err)
}
