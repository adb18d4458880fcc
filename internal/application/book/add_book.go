// Package book hosts the catalog use cases.
package book

import (
	"context"
	"time"

	"github.com/adilzhan/libra/internal/domain/book"
)

// AddBookUseCase registers a new catalog entry.
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase creates the use case.
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{bookService: bookService}
}

// AddBookRequest carries the new book's attributes. Year 0 means unknown,
// an empty ISBN means the book has none.
type AddBookRequest struct {
	Title  string
	Author string
	Year   int
	ISBN   string
	Copies int
}

// BookResponse is the catalog view of a book, shared by the catalog use cases.
type BookResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Year      int    `json:"year,omitempty"`
	ISBN      string `json:"isbn,omitempty"`
	Copies    int    `json:"copies"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Execute validates and stores the book.
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*BookResponse, error) {
	b, err := uc.bookService.AddBook(ctx, req.Title, req.Author, req.Year, req.ISBN, req.Copies)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

func toBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Year:      b.Year,
		ISBN:      b.ISBN,
		Copies:    b.Copies,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}
