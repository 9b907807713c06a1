package dashboard

import (
	"slices"
	"time"
)

// Default configuration values.
const (
	DefaultPageSize   = 10
	DefaultSessionTTL = 30 * time.Minute
)

// DefaultPageSizes is the page-size menu offered when none is configured.
var DefaultPageSizes = []int{10, 20, 50}

// Config holds configuration for the Service.
type Config struct {
	DefaultPageSize int
	PageSizes       []int
	SessionTTL      time.Duration
}

// applyDefaults fills zero or invalid values. The default page size is
// always part of the menu.
func (c *Config) applyDefaults() {
	c.PageSizes = slices.DeleteFunc(slices.Clone(c.PageSizes), func(n int) bool { return n <= 0 })
	if len(c.PageSizes) == 0 {
		c.PageSizes = slices.Clone(DefaultPageSizes)
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = DefaultPageSize
	}
	if !slices.Contains(c.PageSizes, c.DefaultPageSize) {
		c.PageSizes = append(c.PageSizes, c.DefaultPageSize)
	}
	slices.Sort(c.PageSizes)
	c.PageSizes = slices.Compact(c.PageSizes)
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
}
