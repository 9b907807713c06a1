package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rezkam/rentdesk/internal/domain"
)

// Resource is the REST collection of one entity kind:
//
//	GET    /{kind}
//	POST   /{kind}
//	PUT    /{kind}/{id}
//	DELETE /{kind}/{id}
type Resource[T any] struct {
	client *Client
	kind   domain.Kind
	id     func(T) string
}

// NewResource returns the collection of kind served by client.
func NewResource[T any](client *Client, kind domain.Kind, id func(T) string) *Resource[T] {
	return &Resource[T]{client: client, kind: kind, id: id}
}

func (r *Resource[T]) path(id string) string {
	p := "/" + url.PathEscape(string(r.kind))
	if id != "" {
		p += "/" + url.PathEscape(id)
	}
	return p
}

// List fetches the complete collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.path(""), nil, &items); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.kind, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create posts e and returns the backend's representation of it. An empty
// response body leaves e as sent.
func (r *Resource[T]) Create(ctx context.Context, e T) (T, error) {
	var created T
	if err := r.client.do(ctx, http.MethodPost, r.path(""), e, &created); err != nil {
		return e, fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	if r.id(created) == "" {
		return e, nil
	}
	return created, nil
}

// Update replaces the backend copy of e.
func (r *Resource[T]) Update(ctx context.Context, e T) (T, error) {
	id := r.id(e)
	if id == "" {
		return e, fmt.Errorf("%w: empty id", domain.ErrInvalidID)
	}
	var updated T
	if err := r.client.do(ctx, http.MethodPut, r.path(id), e, &updated); err != nil {
		return e, fmt.Errorf("failed to update %s %s: %w", r.kind, id, err)
	}
	if r.id(updated) == "" {
		return e, nil
	}
	return updated, nil
}

// Delete removes the entity with the given identifier.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", domain.ErrInvalidID)
	}
	if err := r.client.do(ctx, http.MethodDelete, r.path(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.kind, id, err)
	}
	return nil
}
