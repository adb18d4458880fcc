package librarian

import (
	"time"
)

// Librarian is a staff account. Every caller of the catalog, roster and
// bookkeeping endpoints is a librarian; IsLibrarian exists so future
// non-staff accounts can share the table without gaining access.
type Librarian struct {
	ID           uint
	Email        string
	PasswordHash string // bcrypt
	IsLibrarian  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewLibrarian creates an account from an already-hashed password.
func NewLibrarian(email, passwordHash string) *Librarian {
	now := time.Now()
	return &Librarian{
		Email:        email,
		PasswordHash: passwordHash,
		IsLibrarian:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
