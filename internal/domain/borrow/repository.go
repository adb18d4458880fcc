package borrow

import (
	"context"
)

// Repository is the borrow ledger's persistence contract, implemented by the
// mysql layer. Create, FindActiveForUpdate, CountActive* and Update are only
// called inside a TxManager transaction by the bookkeeping use cases.
type Repository interface {
	// Create appends an outstanding ledger entry.
	Create(ctx context.Context, record *Record) error

	// FindActiveForUpdate locks and returns the oldest outstanding record for
	// the (book, reader) pair, or ErrNoActiveBorrow when there is none. The
	// FOR UPDATE lock makes a concurrent return of the same record wait and
	// then observe "no active borrow record".
	FindActiveForUpdate(ctx context.Context, bookID, readerID uint) (*Record, error)

	// CountActiveByReader counts the reader's outstanding records across all
	// books (the borrow-cap input).
	CountActiveByReader(ctx context.Context, readerID uint) (int64, error)

	// CountActiveByBook counts outstanding records referencing the book
	// (the deletion guard input).
	CountActiveByBook(ctx context.Context, bookID uint) (int64, error)

	// Update persists the record's return date.
	Update(ctx context.Context, record *Record) error

	// ListWithBooks returns every ledger entry, historical and outstanding,
	// joined with its book's title and author, ordered by record id.
	ListWithBooks(ctx context.Context) ([]RecordWithBook, error)
}
