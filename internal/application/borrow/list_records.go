package borrow

import (
	"context"
	"time"

	"github.com/adilzhan/libra/internal/domain/borrow"
)

// ListRecordsUseCase returns the full borrow ledger, outstanding and
// historical entries alike, joined with book titles.
type ListRecordsUseCase struct {
	borrowRepo borrow.Repository
}

// NewListRecordsUseCase creates the ledger listing use case.
func NewListRecordsUseCase(borrowRepo borrow.Repository) *ListRecordsUseCase {
	return &ListRecordsUseCase{borrowRepo: borrowRepo}
}

// RecordItem is one ledger entry in the listing.
type RecordItem struct {
	RecordID   uint   `json:"record_id"`
	BookID     uint   `json:"book_id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	ReaderID   uint   `json:"reader_id"`
	BorrowDate string `json:"borrow_date"`
	ReturnDate string `json:"return_date,omitempty"` // empty while outstanding
	Returned   bool   `json:"returned"`
}

// ListRecordsResponse wraps the ledger listing.
type ListRecordsResponse struct {
	Records []RecordItem `json:"records"`
	Total   int          `json:"total"`
}

// Execute reads the ledger. No transaction needed: a single joined query.
func (uc *ListRecordsUseCase) Execute(ctx context.Context) (*ListRecordsResponse, error) {
	records, err := uc.borrowRepo.ListWithBooks(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]RecordItem, len(records))
	for i, r := range records {
		item := RecordItem{
			RecordID:   r.ID,
			BookID:     r.BookID,
			Title:      r.Title,
			Author:     r.Author,
			ReaderID:   r.ReaderID,
			BorrowDate: r.BorrowDate.Format(time.RFC3339),
			Returned:   !r.Outstanding(),
		}
		if r.ReturnDate != nil {
			item.ReturnDate = r.ReturnDate.Format(time.RFC3339)
		}
		items[i] = item
	}

	return &ListRecordsResponse{
		Records: items,
		Total:   len(items),
	}, nil
}
