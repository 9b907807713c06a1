// Package urlstate maps typed filter and pagination parameters to and from a
// URL query string.
//
// An Adapter reads from a snapshot of the query taken when it is built, so
// every read during one request sees the same values. Writes go straight to
// the Location as a history replace, never a push, so filter interactions do
// not pile up back-navigation entries.
package urlstate

import (
	"maps"
	"net/url"
	"strconv"
)

// Location is the platform state an Adapter reads and writes.
type Location interface {
	// Query returns the current query parameters.
	Query() url.Values
	// Replace swaps the current history entry's query for q.
	Replace(q url.Values)
}

// Adapter is a typed view over a Location's query string.
type Adapter struct {
	loc      Location
	values   url.Values
	defaults map[string]string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithDefaults registers default values. Writing a parameter equal to its
// default removes it from the query; reads of an absent parameter fall back
// to the default passed to Get or GetInt.
func WithDefaults(defaults map[string]string) Option {
	return func(a *Adapter) {
		maps.Copy(a.defaults, defaults)
	}
}

// New snapshots loc's query and returns an Adapter over it.
func New(loc Location, opts ...Option) *Adapter {
	a := &Adapter{
		loc:      loc,
		values:   cloneValues(loc.Query()),
		defaults: make(map[string]string),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Has reports whether name is present in the snapshot.
func (a *Adapter) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Get returns the value of name, or def when it is absent.
func (a *Adapter) Get(name, def string) string {
	if !a.Has(name) {
		return def
	}
	return a.values.Get(name)
}

// GetInt returns name parsed as an integer, or def when it is absent or not
// an integer.
func (a *Adapter) GetInt(name string, def int) int {
	raw := a.Get(name, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// Set writes a single parameter.
func (a *Adapter) Set(name, value string) {
	a.SetParams(map[string]string{name: value})
}

// SetParams writes all params in one history replace.
func (a *Adapter) SetParams(params map[string]string) {
	if len(params) == 0 {
		return
	}
	q := cloneValues(a.loc.Query())
	for name, value := range params {
		if def, ok := a.defaults[name]; ok && def == value {
			q.Del(name)
			continue
		}
		q.Set(name, value)
	}
	a.loc.Replace(q)
}

// Reload refreshes the snapshot from the Location.
func (a *Adapter) Reload() {
	a.values = cloneValues(a.loc.Query())
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
