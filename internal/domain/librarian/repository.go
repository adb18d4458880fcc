package librarian

import (
	"context"
)

// Repository is implemented by the mysql persistence layer.
type Repository interface {
	// Create inserts an account. Returns errors.ErrEmailDuplicate on a
	// uniqueness violation.
	Create(ctx context.Context, librarian *Librarian) error

	// FindByID returns errors.ErrLibrarianNotFound when absent.
	FindByID(ctx context.Context, id uint) (*Librarian, error)

	// FindByEmail returns errors.ErrLibrarianNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*Librarian, error)
}
