// Package memory provides an in-process Source for development and tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rezkam/rentdesk/internal/domain"
)

// Collection stores entities of one kind, newest first.
type Collection[T any] struct {
	mu    sync.RWMutex
	id    func(T) string
	items []T
}

// NewCollection returns a collection seeded with items in the given order.
func NewCollection[T any](id func(T) string, items ...T) *Collection[T] {
	return &Collection[T]{id: id, items: slices.Clone(items)}
}

// List returns a copy of every stored entity.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items), nil
}

// Create stores e at the head of the collection.
func (c *Collection[T]) Create(ctx context.Context, e T) (T, error) {
	if err := ctx.Err(); err != nil {
		return e, err
	}
	id := c.id(e)
	if id == "" {
		return e, domain.ErrInvalidID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index(id) >= 0 {
		return e, fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidID, id)
	}
	c.items = slices.Insert(c.items, 0, e)
	return e, nil
}

// Update replaces the stored entity with e's identifier.
func (c *Collection[T]) Update(ctx context.Context, e T) (T, error) {
	if err := ctx.Err(); err != nil {
		return e, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(c.id(e))
	if i < 0 {
		return e, domain.ErrNotFound
	}
	c.items[i] = e
	return e, nil
}

// Delete removes the entity with the given identifier.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

func (c *Collection[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(e T) bool { return c.id(e) == id })
}
