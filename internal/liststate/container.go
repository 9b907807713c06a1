package liststate

import (
	"slices"
	"time"
)

// Option configures a Container.
type Option func(*options)

type options struct {
	limit int
	now   func() time.Time
}

// WithLimit sets the initial page size. Non-positive values are ignored.
func WithLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}

// WithClock replaces the clock used to stamp updated entities.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Container is the list state for one entity type. It is not safe for
// concurrent use; owners that share it across goroutines must lock.
type Container[T any] struct {
	schema Schema[T]
	now    func() time.Time

	list       []T
	filtered   []T
	filters    Filters
	pagination Pagination
	order      func(a, b T) int

	loading bool
	err     string
}

// New returns an empty Container with default filters on page 1.
func New[T any](schema Schema[T], opts ...Option) *Container[T] {
	o := options{
		limit: DefaultLimit,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Container[T]{
		schema:     schema,
		now:        o.now,
		list:       []T{},
		filtered:   []T{},
		filters:    schema.DefaultFilters(),
		pagination: Pagination{Page: 1, Limit: o.limit},
	}
}

// SetList replaces the canonical list. The current page is kept: a data
// refresh is not a filter change.
func (c *Container[T]) SetList(items []T) {
	c.list = slices.Clone(items)
	if c.list == nil {
		c.list = []T{}
	}
	if c.order != nil {
		slices.SortStableFunc(c.list, c.order)
	}
	c.recompute()
}

// SetFilters merges partial into the current filters, recomputes the
// projection and returns to page 1.
func (c *Container[T]) SetFilters(partial Filters) {
	for k, v := range partial {
		c.filters[k] = v
	}
	c.recompute()
	c.pagination.Page = 1
}

// ClearFilters restores the default filters and returns to page 1.
func (c *Container[T]) ClearFilters() {
	c.filters = c.schema.DefaultFilters()
	c.recompute()
	c.pagination.Page = 1
}

// SetPage moves to page n. The value is not clamped; derive the valid range
// from Pagination().TotalPages first.
func (c *Container[T]) SetPage(n int) {
	c.pagination.Page = n
}

// SetLimit changes the page size and returns to page 1. Non-positive sizes
// are ignored.
func (c *Container[T]) SetLimit(n int) {
	if n <= 0 {
		return
	}
	c.pagination.Limit = n
	c.pagination.TotalPages = totalPages(len(c.filtered), n)
	c.pagination.Page = 1
}

// SetOrder sorts the list with cmp (stable) and keeps sorting future lists
// delivered by SetList. A nil cmp stops reordering; the current order stays.
func (c *Container[T]) SetOrder(cmp func(a, b T) int) {
	c.order = cmp
	if cmp == nil {
		return
	}
	slices.SortStableFunc(c.list, cmp)
	c.recompute()
}

// Add inserts e at the head of the list. An entity whose identifier is
// already present is ignored.
func (c *Container[T]) Add(e T) {
	if c.indexOf(c.list, c.schema.ID(e)) >= 0 {
		return
	}
	c.list = slices.Insert(c.list, 0, e)
	c.recompute()
}

// Update replaces the entity carrying e's identifier and stamps its
// last-modified time. The entity stays where it is in the filtered list even
// if it no longer matches, so rows do not vanish mid-edit.
func (c *Container[T]) Update(e T) {
	c.replace(c.schema.ID(e), func(T) T { return e })
}

// SetStatus replaces the status of the entity with the given identifier.
func (c *Container[T]) SetStatus(id, status string) {
	if c.schema.SetStatus == nil {
		return
	}
	c.replace(id, func(old T) T { return c.schema.SetStatus(old, status) })
}

// Remove deletes the entity with the given identifier. The page is kept even
// when it becomes empty.
func (c *Container[T]) Remove(id string) {
	i := c.indexOf(c.list, id)
	if i < 0 {
		return
	}
	c.list = slices.Delete(c.list, i, i+1)
	if j := c.indexOf(c.filtered, id); j >= 0 {
		c.filtered = slices.Delete(c.filtered, j, j+1)
	}
	c.pagination.Total = len(c.filtered)
	c.pagination.TotalPages = totalPages(c.pagination.Total, c.pagination.Limit)
}

// VisiblePage returns the slice of the filtered list on the current page.
// Pages outside 1..TotalPages are empty.
func (c *Container[T]) VisiblePage() []T {
	p := c.pagination
	if p.Page < 1 || p.Page > totalPages(len(c.filtered), p.Limit) {
		return []T{}
	}
	start := p.Offset()
	end := min(start+p.Limit, len(c.filtered))
	return slices.Clone(c.filtered[start:end])
}

// Get returns the entity with the given identifier from the canonical list.
func (c *Container[T]) Get(id string) (T, bool) {
	if i := c.indexOf(c.list, id); i >= 0 {
		return c.list[i], true
	}
	var zero T
	return zero, false
}

// List returns a copy of the canonical list.
func (c *Container[T]) List() []T {
	return slices.Clone(c.list)
}

// Filtered returns a copy of the filtered projection.
func (c *Container[T]) Filtered() []T {
	return slices.Clone(c.filtered)
}

// Filters returns a copy of the current filter values.
func (c *Container[T]) Filters() Filters {
	return c.filters.Clone()
}

// Pagination returns the current pagination counters.
func (c *Container[T]) Pagination() Pagination {
	return c.pagination
}

// SetLoading records whether a fetch is in flight.
func (c *Container[T]) SetLoading(loading bool) {
	c.loading = loading
}

// Loading reports whether a fetch is in flight.
func (c *Container[T]) Loading() bool {
	return c.loading
}

// SetError stores the last fetch failure. An empty message clears it.
func (c *Container[T]) SetError(msg string) {
	c.err = msg
}

// Err returns the last fetch failure, or "" when there is none.
func (c *Container[T]) Err() string {
	return c.err
}

func (c *Container[T]) recompute() {
	filtered := make([]T, 0, len(c.list))
	for _, e := range c.list {
		if c.schema.Matches(e, c.filters) {
			filtered = append(filtered, e)
		}
	}
	c.filtered = filtered
	c.pagination.Total = len(filtered)
	c.pagination.TotalPages = totalPages(c.pagination.Total, c.pagination.Limit)
}

func (c *Container[T]) replace(id string, next func(T) T) {
	i := c.indexOf(c.list, id)
	if i < 0 {
		return
	}
	e := next(c.list[i])
	if c.schema.Stamp != nil {
		e = c.schema.Stamp(e, c.now())
	}
	c.list[i] = e
	if j := c.indexOf(c.filtered, id); j >= 0 {
		c.filtered[j] = e
	}
}

func (c *Container[T]) indexOf(items []T, id string) int {
	return slices.IndexFunc(items, func(e T) bool { return c.schema.ID(e) == id })
}
