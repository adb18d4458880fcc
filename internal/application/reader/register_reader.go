// Package reader hosts the roster use cases.
package reader

import (
	"context"
	"time"

	"github.com/adilzhan/libra/internal/domain/reader"
)

// RegisterReaderUseCase adds a reader to the roster.
type RegisterReaderUseCase struct {
	readerService reader.Service
}

// NewRegisterReaderUseCase creates the use case.
func NewRegisterReaderUseCase(readerService reader.Service) *RegisterReaderUseCase {
	return &RegisterReaderUseCase{readerService: readerService}
}

// RegisterReaderRequest carries the new reader's attributes.
type RegisterReaderRequest struct {
	Name  string
	Email string
}

// ReaderResponse is the roster view of a reader, shared by the roster
// use cases.
type ReaderResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Execute validates and stores the reader.
func (uc *RegisterReaderUseCase) Execute(ctx context.Context, req RegisterReaderRequest) (*ReaderResponse, error) {
	r, err := uc.readerService.RegisterReader(ctx, req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	return toReaderResponse(r), nil
}

func toReaderResponse(r *reader.Reader) *ReaderResponse {
	return &ReaderResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}
