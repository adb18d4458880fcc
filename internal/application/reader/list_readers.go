package reader

import (
	"context"

	"github.com/adilzhan/libra/internal/domain/reader"
)

// ListReadersUseCase returns the whole roster; GetReaderUseCase one entry.
type ListReadersUseCase struct {
	readerService reader.Service
}

// NewListReadersUseCase creates the use case.
func NewListReadersUseCase(readerService reader.Service) *ListReadersUseCase {
	return &ListReadersUseCase{readerService: readerService}
}

// ListReadersResponse wraps the roster listing.
type ListReadersResponse struct {
	Readers []ReaderResponse `json:"readers"`
	Total   int              `json:"total"`
}

// Execute lists the roster ordered by id.
func (uc *ListReadersUseCase) Execute(ctx context.Context) (*ListReadersResponse, error) {
	readers, err := uc.readerService.ListReaders(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ReaderResponse, len(readers))
	for i, r := range readers {
		items[i] = *toReaderResponse(r)
	}

	return &ListReadersResponse{
		Readers: items,
		Total:   len(items),
	}, nil
}

// GetReaderUseCase fetches one roster entry by id.
type GetReaderUseCase struct {
	readerService reader.Service
}

// NewGetReaderUseCase creates the use case.
func NewGetReaderUseCase(readerService reader.Service) *GetReaderUseCase {
	return &GetReaderUseCase{readerService: readerService}
}

// Execute returns the reader or ErrReaderNotFound.
func (uc *GetReaderUseCase) Execute(ctx context.Context, id uint) (*ReaderResponse, error) {
	r, err := uc.readerService.GetReader(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReaderResponse(r), nil
}
