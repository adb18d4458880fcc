package book

import (
	"context"
	"regexp"
)

// Service validates catalog operations before they reach the repository.
type Service interface {
	// AddBook creates a catalog entry. Title and author are required, copies
	// must be >= 0, and the ISBN (when present) must be 10 or 13 digits.
	AddBook(ctx context.Context, title, author string, year int, isbn string, copies int) (*Book, error)

	// GetBook returns a single catalog entry.
	GetBook(ctx context.Context, id uint) (*Book, error)

	// ListBooks returns the whole catalog.
	ListBooks(ctx context.Context) ([]*Book, error)

	// UpdateBook applies a partial update.
	UpdateBook(ctx context.Context, id uint, upd Update) (*Book, error)
}

type service struct {
	repo Repository
}

// NewService creates the catalog domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddBook(ctx context.Context, title, author string, year int, isbn string, copies int) (*Book, error) {
	if title == "" || author == "" {
		return nil, ErrInvalidTitle
	}
	if copies < 0 {
		return nil, ErrInvalidCopies
	}
	if isbn != "" && !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}

	b := NewBook(title, author, year, isbn, copies)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateBook(ctx context.Context, id uint, upd Update) (*Book, error) {
	if upd.ISBN != nil && *upd.ISBN != "" && !isValidISBN(*upd.ISBN) {
		return nil, ErrInvalidISBN
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.Apply(upd); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// isValidISBN accepts ISBN-10 and ISBN-13, with or without separators.
// Only length and digits are checked; check-digit validation is out of scope.
func isValidISBN(isbn string) bool {
	re := regexp.MustCompile(`[^0-9Xx]`)
	clean := re.ReplaceAllString(isbn, "")

	length := len(clean)
	return length == 10 || length == 13
}
