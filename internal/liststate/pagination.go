package liststate

// DefaultLimit is the page size used when a Container is built without WithLimit.
const DefaultLimit = 10

// Pagination describes the current page over the filtered list.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Offset returns the index of the first entity on the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// HasNext reports whether a page follows the current one.
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrevious reports whether a page precedes the current one.
func (p Pagination) HasPrevious() bool {
	return p.Page > 1
}

// LastPage returns the highest page a caller may show. An empty list still
// has page 1.
func (p Pagination) LastPage() int {
	return max(p.TotalPages, 1)
}

// OutOfRange reports whether the page points past LastPage. The Container
// never corrects this on its own.
func (p Pagination) OutOfRange() bool {
	return p.Page > p.LastPage()
}

func totalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total-1)/limit + 1
}
