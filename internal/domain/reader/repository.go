package reader

import (
	"context"
)

// Repository is implemented by the mysql persistence layer.
type Repository interface {
	// Create inserts a reader. Returns ErrEmailDuplicate on a uniqueness
	// violation.
	Create(ctx context.Context, reader *Reader) error

	// FindByID returns ErrReaderNotFound when the reader does not exist.
	FindByID(ctx context.Context, id uint) (*Reader, error)

	// LockByID reads the reader row under SELECT ... FOR UPDATE. Must be
	// called inside a transaction; the lock serializes concurrent borrows by
	// the same reader so the borrow cap cannot be overshot.
	LockByID(ctx context.Context, id uint) (*Reader, error)

	// Update persists all fields of the reader.
	Update(ctx context.Context, reader *Reader) error

	// Delete soft-deletes the reader.
	Delete(ctx context.Context, id uint) error

	// List returns the whole roster ordered by id.
	List(ctx context.Context) ([]*Reader, error)
}
