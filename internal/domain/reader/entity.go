package reader

import (
	"time"
)

// Reader is a registered library member. Email is unique across the roster.
type Reader struct {
	ID        uint
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReader creates a roster entry.
func NewReader(name, email string) *Reader {
	now := time.Now()
	return &Reader{
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update is the explicit optional-field structure for partial roster edits.
type Update struct {
	Name  *string
	Email *string
}

// Apply merges u into the reader.
func (r *Reader) Apply(u Update) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Email != nil {
		r.Email = *u.Email
	}
	r.UpdatedAt = time.Now()
}
