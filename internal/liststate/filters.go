package liststate

import (
	"maps"
	"strings"
)

const (
	// All is the filter value that places no constraint on its field.
	All = "all"

	// SearchKey names the free-text filter.
	SearchKey = "search"
)

// Filters maps filter names to their current values.
type Filters map[string]string

// Clone returns an independent copy.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	maps.Copy(out, f)
	return out
}

// Search returns the free-text filter value.
func (f Filters) Search() string {
	return f[SearchKey]
}

// Active reports the value of key when it constrains the list. Empty values
// and the All sentinel do not.
func (f Filters) Active(key string) (string, bool) {
	v, ok := f[key]
	if !ok || v == "" || v == All {
		return "", false
	}
	return v, true
}

// Equal reports whether f and other constrain the list identically, treating
// absent keys, empty values and All as the same.
func (f Filters) Equal(other Filters) bool {
	for k := range f {
		a, _ := f.Active(k)
		b, _ := other.Active(k)
		if a != b {
			return false
		}
	}
	for k := range other {
		a, _ := f.Active(k)
		b, _ := other.Active(k)
		if a != b {
			return false
		}
	}
	return true
}

// containsFold reports whether substr appears in s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
