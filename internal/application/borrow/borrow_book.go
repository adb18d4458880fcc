// Package borrow hosts the bookkeeping use cases. Borrow and return are the
// two transactional units of work of the system: each one locks, checks and
// mutates the catalog and the ledger inside a single database transaction.
package borrow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/adilzhan/libra/internal/domain/book"
	"github.com/adilzhan/libra/internal/domain/borrow"
	"github.com/adilzhan/libra/internal/domain/reader"
	apperrors "github.com/adilzhan/libra/pkg/errors"
	"github.com/adilzhan/libra/pkg/logger"
	"github.com/adilzhan/libra/pkg/metrics"
	"github.com/adilzhan/libra/pkg/mq"
)

// TxManager runs a unit of work inside a database transaction. The callback's
// context carries the transaction; repositories called with it join it.
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// maxTxAttempts bounds the retry loop for serialization conflicts. InnoDB
// resolves a deadlock by rolling back one participant; the rolled-back unit
// of work is safe to rerun from the top because nothing of it committed.
const maxTxAttempts = 3

// BorrowBookUseCase records a borrow: one new outstanding ledger entry and a
// decrement of the book's available copies, atomically.
type BorrowBookUseCase struct {
	borrowRepo borrow.Repository
	bookRepo   book.Repository
	readerRepo reader.Repository
	txManager  TxManager
	publisher  mq.EventPublisher
}

// NewBorrowBookUseCase creates the borrow use case.
func NewBorrowBookUseCase(
	borrowRepo borrow.Repository,
	bookRepo book.Repository,
	readerRepo reader.Repository,
	txManager TxManager,
	publisher mq.EventPublisher,
) *BorrowBookUseCase {
	return &BorrowBookUseCase{
		borrowRepo: borrowRepo,
		bookRepo:   bookRepo,
		readerRepo: readerRepo,
		txManager:  txManager,
		publisher:  publisher,
	}
}

// BorrowBookRequest identifies the book and the reader.
type BorrowBookRequest struct {
	BookID   uint
	ReaderID uint
}

// BorrowBookResponse describes the ledger entry that was created.
type BorrowBookResponse struct {
	RecordID   uint   `json:"record_id"`
	BookID     uint   `json:"book_id"`
	ReaderID   uint   `json:"reader_id"`
	BorrowDate string `json:"borrow_date"`
}

// Execute runs the borrow transaction.
//
// Lock order is book row first, reader row second, and the return path takes
// no reader lock, so the two units of work cannot deadlock against each other
// by ordering alone. All checks run after both locks are held:
//
//  1. lock the book row (existence + copies check are now race-free)
//  2. lock the reader row (serializes same-reader borrows for the cap count)
//  3. copies > 0, else "no available copies"
//  4. outstanding count < cap, else "reader already has 3 borrowed books"
//  5. append the ledger entry and decrement copies
//
// A serialization failure rolls everything back and the whole unit of work is
// retried a bounded number of times.
func (uc *BorrowBookUseCase) Execute(ctx context.Context, req BorrowBookRequest) (*BorrowBookResponse, error) {
	var rec *borrow.Record

	err := runInTx(ctx, uc.txManager, func(txCtx context.Context) error {
		b, err := uc.bookRepo.LockByID(txCtx, req.BookID)
		if err != nil {
			return err
		}

		rd, err := uc.readerRepo.LockByID(txCtx, req.ReaderID)
		if err != nil {
			return err
		}

		if !b.HasAvailableCopies() {
			return book.ErrNoCopiesAvailable
		}

		active, err := uc.borrowRepo.CountActiveByReader(txCtx, rd.ID)
		if err != nil {
			return err
		}
		if active >= borrow.MaxActiveBorrows {
			return borrow.ErrBorrowLimitReached
		}

		rec = borrow.NewRecord(b.ID, rd.ID)
		if err := uc.borrowRepo.Create(txCtx, rec); err != nil {
			return err
		}

		// Guarded decrement; cannot underflow even if the locking above is
		// ever bypassed by a new caller.
		return uc.bookRepo.UpdateCopies(txCtx, b.ID, -1)
	})
	if err != nil {
		if isRejection(err) {
			metrics.BorrowsRejectedTotal.Inc()
		}
		return nil, err
	}

	metrics.BorrowsTotal.Inc()
	publishEvent(uc.publisher, "borrow.recorded", rec)

	return &BorrowBookResponse{
		RecordID:   rec.ID,
		BookID:     rec.BookID,
		ReaderID:   rec.ReaderID,
		BorrowDate: rec.BorrowDate.Format(time.RFC3339),
	}, nil
}

// runInTx reruns the transactional unit of work on serialization conflicts
// (deadlock victim, lock wait timeout). Business errors are never retried.
func runInTx(ctx context.Context, tm TxManager, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = tm.Transaction(ctx, fn)
		if err == nil || !apperrors.IsCode(err, apperrors.ErrCodeTxConflict) {
			return err
		}
		if attempt < maxTxAttempts {
			metrics.TxRetriesTotal.Inc()
			logger.L().Warn("retrying after transaction conflict",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
	}
	return err
}

// publishEvent emits a ledger event after commit. Best effort: the change has
// already committed, so a broker failure is logged and swallowed.
func publishEvent(p mq.EventPublisher, routingKey string, rec *borrow.Record) {
	event := map[string]interface{}{
		"record_id": rec.ID,
		"book_id":   rec.BookID,
		"reader_id": rec.ReaderID,
		"at":        time.Now().Format(time.RFC3339),
	}
	if err := p.Publish(routingKey, event); err != nil {
		logger.L().Warn("failed to publish ledger event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}

// isRejection reports whether the borrow failed on a business rule rather
// than a missing resource or an internal error.
func isRejection(err error) bool {
	return apperrors.IsCode(err, apperrors.ErrCodeNoCopiesAvailable) ||
		apperrors.IsCode(err, apperrors.ErrCodeBorrowLimit)
}
