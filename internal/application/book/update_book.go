package book

import (
	"context"

	"github.com/adilzhan/libra/internal/domain/book"
)

// UpdateBookUseCase applies a partial catalog update. Only the fields present
// in the request change; the rest keep their stored values.
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase creates the use case.
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest uses pointers to distinguish "not sent" from zero values:
// a nil field is left untouched, a present field overwrites.
type UpdateBookRequest struct {
	Title  *string
	Author *string
	Year   *int
	ISBN   *string
	Copies *int
}

// Execute merges the update into the stored book.
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookResponse, error) {
	b, err := uc.bookService.UpdateBook(ctx, id, book.Update{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		ISBN:   req.ISBN,
		Copies: req.Copies,
	})
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}
