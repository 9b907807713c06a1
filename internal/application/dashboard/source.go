package dashboard

import "context"

// Source is the data-fetch collaborator for one entity kind. List must
// return the complete collection or an error, never a partial result.
// Update and Delete return domain.ErrNotFound for unknown identifiers.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, e T) (T, error)
	Update(ctx context.Context, e T) (T, error)
	Delete(ctx context.Context, id string) error
}
