// Package catalog describes each managed entity to the list state container:
// which fields the free-text search reads, which fields back categorical
// filters, the status vocabulary and the named sort orders.
package catalog

import (
	"cmp"
	"strings"
	"time"

	"github.com/rezkam/rentdesk/internal/domain"
	"github.com/rezkam/rentdesk/internal/liststate"
)

// Entry is the full description of one entity kind.
type Entry[T any] struct {
	Kind     domain.Kind
	Schema   liststate.Schema[T]
	Statuses []string

	// Options lists the selectable values per categorical filter, for
	// dropdowns. Free-form categories (cities, agencies) have none.
	Options map[string][]string

	// Extras names filters handled by Schema.Match rather than by a
	// categorical field.
	Extras []string

	// Sorts maps a sort key to an ascending comparison.
	Sorts map[string]func(a, b T) int

	// Record returns the shared identity and audit fields.
	Record func(T) domain.Record

	// Assign sets the identifier and creation timestamps of a new entity.
	Assign func(e T, id string, now time.Time) T
}

// Status returns the entity's status.
func (e Entry[T]) Status(v T) string {
	if get, ok := e.Schema.Categories["status"]; ok {
		return get(v)
	}
	return ""
}

// Order returns the comparison for key in the given direction, or nil when
// key is unknown.
func (e Entry[T]) Order(key string, desc bool) func(a, b T) int {
	asc, ok := e.Sorts[key]
	if !ok {
		return nil
	}
	if desc {
		return func(a, b T) int { return asc(b, a) }
	}
	return asc
}

// record is satisfied by pointers to entity structs embedding domain.Record.
type record[E any] interface {
	*E
	Base() domain.Record
	Assign(id string, now time.Time)
	Touch(now time.Time)
}

// newEntry fills the parts every entity shares.
func newEntry[E any, P record[E]](kind domain.Kind, statuses []string) Entry[E] {
	return Entry[E]{
		Kind:     kind,
		Statuses: statuses,
		Schema: liststate.Schema[E]{
			ID: func(e E) string { return P(&e).Base().ID },
			Stamp: func(e E, now time.Time) E {
				P(&e).Touch(now)
				return e
			},
		},
		Options: map[string][]string{"status": statuses},
		Sorts: map[string]func(a, b E) int{
			"createdAt": func(a, b E) int {
				return P(&a).Base().CreatedAt.Compare(P(&b).Base().CreatedAt)
			},
			"updatedAt": func(a, b E) int {
				return P(&a).Base().UpdatedAt.Compare(P(&b).Base().UpdatedAt)
			},
		},
		Record: func(e E) domain.Record { return P(&e).Base() },
		Assign: func(e E, id string, now time.Time) E {
			P(&e).Assign(id, now)
			return e
		},
	}
}

func byText(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}
