package urlstate

import (
	"net/http"
	"net/url"
	"sync"
)

// ReplaceURLHeader tells an htmx front end to replace the current history
// entry with the given URL.
const ReplaceURLHeader = "HX-Replace-Url"

// MemoryLocation is an in-process history stack.
type MemoryLocation struct {
	mu      sync.Mutex
	path    string
	entries []url.Values
}

// NewMemoryLocation starts a history with a single entry parsed from rawURL.
func NewMemoryLocation(rawURL string) (*MemoryLocation, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return &MemoryLocation{path: u.Path, entries: []url.Values{u.Query()}}, nil
}

// Query returns the current entry's query.
func (l *MemoryLocation) Query() url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneValues(l.entries[len(l.entries)-1])
}

// Replace overwrites the current entry.
func (l *MemoryLocation) Replace(q url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[len(l.entries)-1] = cloneValues(q)
}

// Push appends a new entry, as a link navigation would.
func (l *MemoryLocation) Push(q url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, cloneValues(q))
}

// Len returns the number of history entries.
func (l *MemoryLocation) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// String renders the current entry as a relative URL.
func (l *MemoryLocation) String() string {
	u := url.URL{Path: l.path, RawQuery: l.Query().Encode()}
	return u.String()
}

// ResponseLocation reads the query of an incoming request and reports
// replacements through the ReplaceURLHeader response header. Replace must be
// called before the response status is written.
type ResponseLocation struct {
	r       *http.Request
	w       http.ResponseWriter
	current url.Values
}

// NewResponseLocation binds a Location to one request/response pair.
func NewResponseLocation(w http.ResponseWriter, r *http.Request) *ResponseLocation {
	return &ResponseLocation{r: r, w: w, current: r.URL.Query()}
}

// Query returns the request query, including earlier replacements.
func (l *ResponseLocation) Query() url.Values {
	return cloneValues(l.current)
}

// Replace records q as the canonical query for this page.
func (l *ResponseLocation) Replace(q url.Values) {
	l.current = cloneValues(q)
	u := url.URL{Path: l.r.URL.Path, RawQuery: q.Encode()}
	l.w.Header().Set(ReplaceURLHeader, u.String())
}

// Replaced reports whether the canonical URL differs from the request URL.
func (l *ResponseLocation) Replaced() bool {
	return l.w.Header().Get(ReplaceURLHeader) != ""
}
