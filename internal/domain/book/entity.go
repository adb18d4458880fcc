package book

import (
	"time"
)

// Book is the catalog aggregate root.
//
// Copies is the number of copies currently available for borrowing, not the
// total stock: the bookkeeping transaction decrements it on borrow and
// increments it on return, and it must never go negative. Year and ISBN are
// optional; a zero Year and an empty ISBN mean "not recorded". When an ISBN
// is present it is unique across the catalog (enforced by the database).
type Book struct {
	ID        uint
	Title     string
	Author    string
	Year      int    // 0 when unknown
	ISBN      string // empty when not recorded
	Copies    int    // available copies, >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook creates a catalog entry. Validation belongs to the domain service.
func NewBook(title, author string, year int, isbn string, copies int) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		Author:    author,
		Year:      year,
		ISBN:      isbn,
		Copies:    copies,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update is the explicit optional-field structure for partial catalog edits.
// A nil field means "leave unchanged"; a set field is applied as-is. This
// replaces the attribute-merge pattern of dynamic partial updates with a
// merge the compiler can see.
type Update struct {
	Title  *string
	Author *string
	Year   *int
	ISBN   *string
	Copies *int
}

// Apply merges u into the book. Setting Copies below zero is rejected.
// Directly editing Copies is a catalog correction and is a documented
// consistency risk when it races the bookkeeping transaction.
func (b *Book) Apply(u Update) error {
	if u.Copies != nil && *u.Copies < 0 {
		return ErrInvalidCopies
	}

	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Year != nil {
		b.Year = *u.Year
	}
	if u.ISBN != nil {
		b.ISBN = *u.ISBN
	}
	if u.Copies != nil {
		b.Copies = *u.Copies
	}
	b.UpdatedAt = time.Now()
	return nil
}

// HasAvailableCopies reports whether at least one copy can be borrowed.
func (b *Book) HasAvailableCopies() bool {
	return b.Copies > 0
}
