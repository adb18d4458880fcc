package borrow

import (
	"context"
	"time"

	"github.com/adilzhan/libra/internal/domain/book"
	"github.com/adilzhan/libra/internal/domain/borrow"
	"github.com/adilzhan/libra/internal/domain/reader"
	"github.com/adilzhan/libra/pkg/metrics"
	"github.com/adilzhan/libra/pkg/mq"
)

// ReturnBookUseCase records a return: the oldest outstanding ledger entry for
// the (book, reader) pair is closed and the book's available copies counter
// is incremented, atomically.
type ReturnBookUseCase struct {
	borrowRepo borrow.Repository
	bookRepo   book.Repository
	readerRepo reader.Repository
	txManager  TxManager
	publisher  mq.EventPublisher
}

// NewReturnBookUseCase creates the return use case.
func NewReturnBookUseCase(
	borrowRepo borrow.Repository,
	bookRepo book.Repository,
	readerRepo reader.Repository,
	txManager TxManager,
	publisher mq.EventPublisher,
) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		borrowRepo: borrowRepo,
		bookRepo:   bookRepo,
		readerRepo: readerRepo,
		txManager:  txManager,
		publisher:  publisher,
	}
}

// ReturnBookRequest identifies the book and the reader.
type ReturnBookRequest struct {
	BookID   uint
	ReaderID uint
}

// ReturnBookResponse describes the ledger entry that was closed.
type ReturnBookResponse struct {
	RecordID   uint   `json:"record_id"`
	BookID     uint   `json:"book_id"`
	ReaderID   uint   `json:"reader_id"`
	BorrowDate string `json:"borrow_date"`
	ReturnDate string `json:"return_date"`
}

// Execute runs the return transaction.
//
// The outstanding record row is locked first (FOR UPDATE). Two concurrent
// returns of the same record serialize on that lock: the loser re-evaluates
// the "still outstanding" predicate against the winner's commit and gets
// "no active borrow record". If the same pair holds several outstanding
// records, the oldest one is closed.
func (uc *ReturnBookUseCase) Execute(ctx context.Context, req ReturnBookRequest) (*ReturnBookResponse, error) {
	var rec *borrow.Record

	err := runInTx(ctx, uc.txManager, func(txCtx context.Context) error {
		r, err := uc.borrowRepo.FindActiveForUpdate(txCtx, req.BookID, req.ReaderID)
		if err != nil {
			return err
		}

		// The record proves both ids were valid at borrow time, but a clearer
		// not-found error beats a ledger error when the book has vanished.
		if _, err := uc.bookRepo.LockByID(txCtx, req.BookID); err != nil {
			return err
		}

		if err := r.MarkReturned(time.Now()); err != nil {
			return err
		}
		if err := uc.borrowRepo.Update(txCtx, r); err != nil {
			return err
		}
		if err := uc.bookRepo.UpdateCopies(txCtx, req.BookID, 1); err != nil {
			return err
		}

		rec = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ReturnsTotal.Inc()
	publishEvent(uc.publisher, "borrow.returned", rec)

	return &ReturnBookResponse{
		RecordID:   rec.ID,
		BookID:     rec.BookID,
		ReaderID:   rec.ReaderID,
		BorrowDate: rec.BorrowDate.Format(time.RFC3339),
		ReturnDate: rec.ReturnDate.Format(time.RFC3339),
	}, nil
}
