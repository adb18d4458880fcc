package book

import (
	"context"

	"github.com/adilzhan/libra/internal/domain/book"
	"github.com/adilzhan/libra/internal/domain/borrow"
)

// TxManager runs a unit of work inside a database transaction.
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeleteBookUseCase removes a catalog entry. Deletion is refused while any
// ledger entry for the book is still outstanding. Returned history does not
// block it: the delete is soft, so old ledger entries keep joining against
// the books row.
type DeleteBookUseCase struct {
	bookRepo   book.Repository
	borrowRepo borrow.Repository
	txManager  TxManager
}

// NewDeleteBookUseCase creates the use case.
func NewDeleteBookUseCase(bookRepo book.Repository, borrowRepo borrow.Repository, txManager TxManager) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo:   bookRepo,
		borrowRepo: borrowRepo,
		txManager:  txManager,
	}
}

// Execute deletes the book unless copies of it are still checked out. The
// check and the delete run in one transaction with the book row locked, so a
// concurrent borrow cannot slip in between them.
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.bookRepo.LockByID(txCtx, id); err != nil {
			return err
		}

		active, err := uc.borrowRepo.CountActiveByBook(txCtx, id)
		if err != nil {
			return err
		}
		if active > 0 {
			return book.ErrHasActiveBorrows
		}

		return uc.bookRepo.Delete(txCtx, id)
	})
}
