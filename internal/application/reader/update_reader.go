package reader

import (
	"context"

	"github.com/adilzhan/libra/internal/domain/reader"
)

// UpdateReaderUseCase applies a partial roster update.
type UpdateReaderUseCase struct {
	readerService reader.Service
}

// NewUpdateReaderUseCase creates the use case.
func NewUpdateReaderUseCase(readerService reader.Service) *UpdateReaderUseCase {
	return &UpdateReaderUseCase{readerService: readerService}
}

// UpdateReaderRequest uses pointers to distinguish "not sent" from zero
// values: a nil field is left untouched.
type UpdateReaderRequest struct {
	Name  *string
	Email *string
}

// Execute merges the update into the stored reader.
func (uc *UpdateReaderUseCase) Execute(ctx context.Context, id uint, req UpdateReaderRequest) (*ReaderResponse, error) {
	r, err := uc.readerService.UpdateReader(ctx, id, reader.Update{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return nil, err
	}
	return toReaderResponse(r), nil
}
