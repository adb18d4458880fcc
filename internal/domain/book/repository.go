package book

import (
	"context"
)

// Repository is implemented by the mysql persistence layer. All methods
// participate in an ambient transaction when ctx carries one (TxManager).
type Repository interface {
	// Create inserts a catalog entry. Returns ErrISBNDuplicate on an ISBN
	// uniqueness violation.
	Create(ctx context.Context, book *Book) error

	// FindByID returns ErrBookNotFound when the book does not exist.
	FindByID(ctx context.Context, id uint) (*Book, error)

	// LockByID reads the book row under SELECT ... FOR UPDATE. Must be called
	// inside a transaction; the lock serializes concurrent borrow attempts
	// against the same book.
	LockByID(ctx context.Context, id uint) (*Book, error)

	// Update persists all fields of the book.
	Update(ctx context.Context, book *Book) error

	// Delete soft-deletes the catalog entry.
	Delete(ctx context.Context, id uint) error

	// List returns the whole catalog ordered by id.
	List(ctx context.Context) ([]*Book, error)

	// UpdateCopies atomically applies delta to the available-copies counter,
	// refusing to drive it negative (ErrNoCopiesAvailable). The bookkeeping
	// transaction is the only caller with a negative delta.
	UpdateCopies(ctx context.Context, id uint, delta int) error
}
