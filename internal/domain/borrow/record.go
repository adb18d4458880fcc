package borrow

import (
	"time"
)

// MaxActiveBorrows is the borrow cap: the number of outstanding records a
// single reader may hold at once, counted across all books.
const MaxActiveBorrows = 3

// Record is one entry in the borrow ledger. A record is Outstanding while
// ReturnDate is nil and Returned once it is set; the transition is one-way
// and a returned record is never mutated again. Records are never deleted.
type Record struct {
	ID         uint
	BookID     uint
	ReaderID   uint
	BorrowDate time.Time
	ReturnDate *time.Time // nil while outstanding
}

// NewRecord opens an outstanding ledger entry.
func NewRecord(bookID, readerID uint) *Record {
	return &Record{
		BookID:     bookID,
		ReaderID:   readerID,
		BorrowDate: time.Now(),
	}
}

// Outstanding reports whether the book is still checked out on this record.
func (r *Record) Outstanding() bool {
	return r.ReturnDate == nil
}

// MarkReturned closes the record. Closing an already-returned record fails:
// the ledger state machine is terminal at Returned.
func (r *Record) MarkReturned(at time.Time) error {
	if r.ReturnDate != nil {
		return ErrAlreadyReturned
	}
	r.ReturnDate = &at
	return nil
}

// RecordWithBook is the denormalized listing view: a ledger entry joined
// with the title and author of its book.
type RecordWithBook struct {
	Record
	Title  string
	Author string
}
