package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/rezkam/rentdesk/internal/domain"
)

// Collection stores entities of one kind as JSONB documents in the shared
// entities table.
type Collection[T any] struct {
	store  *Store
	kind   domain.Kind
	record func(T) domain.Record
}

// NewCollection returns a Collection for kind. record exposes the
// identifier and timestamps of an entity.
func NewCollection[T any](store *Store, kind domain.Kind, record func(T) domain.Record) *Collection[T] {
	return &Collection[T]{store: store, kind: kind, record: record}
}

// List returns every entity of the collection's kind, newest first.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	rows, err := c.store.pool.Query(ctx,
		`SELECT body FROM entities WHERE kind = $1 ORDER BY created_at DESC, id DESC`,
		string(c.kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.kind, err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		var (
			body []byte
			e    T
		)
		if err := row.Scan(&body); err != nil {
			return e, err
		}
		if err := json.Unmarshal(body, &e); err != nil {
			return e, fmt.Errorf("failed to decode %s: %w", c.kind, err)
		}
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.kind, err)
	}
	return items, nil
}

// Create inserts e. The identifier must be unique within the kind.
func (c *Collection[T]) Create(ctx context.Context, e T) (T, error) {
	rec := c.record(e)
	if rec.ID == "" {
		return e, fmt.Errorf("%w: empty id", domain.ErrInvalidID)
	}

	body, err := json.Marshal(e)
	if err != nil {
		return e, fmt.Errorf("failed to encode %s: %w", c.kind, err)
	}

	_, err = c.store.pool.Exec(ctx,
		`INSERT INTO entities (kind, id, body, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		string(c.kind), rec.ID, body, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return e, fmt.Errorf("%w: duplicate %s %s", domain.ErrInvalidID, c.kind, rec.ID)
		}
		return e, fmt.Errorf("failed to create %s: %w", c.kind, err)
	}

	slog.DebugContext(ctx, "entity created", "kind", c.kind, "id", rec.ID)
	return e, nil
}

// Update replaces the stored document of e.
func (c *Collection[T]) Update(ctx context.Context, e T) (T, error) {
	rec := c.record(e)

	body, err := json.Marshal(e)
	if err != nil {
		return e, fmt.Errorf("failed to encode %s: %w", c.kind, err)
	}

	tag, err := c.store.pool.Exec(ctx,
		`UPDATE entities SET body = $3, updated_at = $4 WHERE kind = $1 AND id = $2`,
		string(c.kind), rec.ID, body, rec.UpdatedAt)
	if err != nil {
		return e, fmt.Errorf("failed to update %s: %w", c.kind, err)
	}
	if err := checkRowsAffected(tag.RowsAffected(), c.kind, rec.ID); err != nil {
		return e, err
	}
	return e, nil
}

// Delete removes the entity with the given identifier.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	tag, err := c.store.pool.Exec(ctx,
		`DELETE FROM entities WHERE kind = $1 AND id = $2`,
		string(c.kind), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", c.kind, err)
	}
	return checkRowsAffected(tag.RowsAffected(), c.kind, id)
}
