package reader

import (
	"context"

	"github.com/adilzhan/libra/internal/domain/reader"
)

// DeleteReaderUseCase removes a reader from the roster. The ledger keeps the
// reader's borrow history by id, so past records survive the delete.
type DeleteReaderUseCase struct {
	readerService reader.Service
}

// NewDeleteReaderUseCase creates the use case.
func NewDeleteReaderUseCase(readerService reader.Service) *DeleteReaderUseCase {
	return &DeleteReaderUseCase{readerService: readerService}
}

// Execute deletes the reader or returns ErrReaderNotFound.
func (uc *DeleteReaderUseCase) Execute(ctx context.Context, id uint) error {
	return uc.readerService.DeleteReader(ctx, id)
}
