package domain

import "time"

// Record holds the identity and audit fields shared by every entity.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Assign sets the identifier and both timestamps for a newly created entity.
func (r *Record) Assign(id string, now time.Time) {
	r.ID = id
	r.CreatedAt = now
	r.UpdatedAt = now
}

// Touch stamps the last-modified time.
func (r *Record) Touch(now time.Time) {
	r.UpdatedAt = now
}

// Base returns the shared record fields.
func (r Record) Base() Record {
	return r
}
