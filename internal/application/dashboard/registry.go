package dashboard

import (
	"github.com/rezkam/rentdesk/internal/catalog"
	"github.com/rezkam/rentdesk/internal/domain"
)

// Registry knows how to build a Page for every managed kind. Sources are
// shared by all sessions; containers are not.
type Registry struct {
	factories map[domain.Kind]func(Config) Page
	order     []domain.Kind
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[domain.Kind]func(Config) Page)}
}

// Register binds an entity description to its source. Registering a kind
// twice replaces the earlier binding.
func Register[T any](r *Registry, entry catalog.Entry[T], source Source[T]) {
	if _, ok := r.factories[entry.Kind]; !ok {
		r.order = append(r.order, entry.Kind)
	}
	r.factories[entry.Kind] = func(cfg Config) Page {
		return NewBoard(entry, source, cfg)
	}
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []domain.Kind {
	return append([]domain.Kind(nil), r.order...)
}

func (r *Registry) build(kind domain.Kind, cfg Config) (Page, bool) {
	f, ok := r.factories[kind]
	if !ok {
		return nil, false
	}
	return f(cfg), true
}
