package book

import (
	"context"

	"github.com/adilzhan/libra/internal/domain/book"
)

// ListBooksUseCase returns the whole catalog; GetBookUseCase a single entry.
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase creates the use case.
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// ListBooksResponse wraps the catalog listing.
type ListBooksResponse struct {
	Books []BookResponse `json:"books"`
	Total int            `json:"total"`
}

// Execute lists the catalog ordered by id.
func (uc *ListBooksUseCase) Execute(ctx context.Context) (*ListBooksResponse, error) {
	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]BookResponse, len(books))
	for i, b := range books {
		items[i] = *toBookResponse(b)
	}

	return &ListBooksResponse{
		Books: items,
		Total: len(items),
	}, nil
}

// GetBookUseCase fetches one catalog entry by id.
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase creates the use case.
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute returns the book or ErrBookNotFound.
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookResponse, error) {
	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}
