package liststate

import (
	"maps"
	"slices"
	"time"
)

// Schema describes how a Container reads and stamps one entity type.
// Only ID is required.
type Schema[T any] struct {
	// ID returns the unique, stable identifier of an entity.
	ID func(T) string

	// Search returns the fields matched by the free-text filter.
	Search func(T) []string

	// Categories maps a categorical filter name to the field it matches
	// exactly. A filter set to All places no constraint.
	Categories map[string]func(T) string

	// Match is an optional predicate for entity-specific filters such as
	// numeric ranges. It runs after search and categorical filters.
	Match func(T, Filters) bool

	// Stamp returns e with its last-modified time set to now.
	Stamp func(e T, now time.Time) T

	// SetStatus returns e with its status replaced.
	SetStatus func(e T, status string) T
}

// DefaultFilters returns the empty search plus every categorical filter set
// to All.
func (s Schema[T]) DefaultFilters() Filters {
	f := Filters{SearchKey: ""}
	for key := range s.Categories {
		f[key] = All
	}
	return f
}

// FilterKeys returns the search key followed by the categorical keys in
// lexical order.
func (s Schema[T]) FilterKeys() []string {
	return append([]string{SearchKey}, slices.Sorted(maps.Keys(s.Categories))...)
}

// Matches reports whether e passes every active filter.
func (s Schema[T]) Matches(e T, f Filters) bool {
	if q := f.Search(); q != "" && s.Search != nil {
		found := false
		for _, field := range s.Search(e) {
			if containsFold(field, q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for key, field := range s.Categories {
		want, ok := f.Active(key)
		if ok && field(e) != want {
			return false
		}
	}

	if s.Match != nil && !s.Match(e, f) {
		return false
	}
	return true
}
