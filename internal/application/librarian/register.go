// Package librarian hosts the account use cases: register, login, logout.
package librarian

import (
	"context"
	"time"

	"github.com/adilzhan/libra/internal/domain/librarian"
)

// RegisterUseCase creates a librarian account.
type RegisterUseCase struct {
	librarianService librarian.Service
}

// NewRegisterUseCase creates the use case.
func NewRegisterUseCase(librarianService librarian.Service) *RegisterUseCase {
	return &RegisterUseCase{librarianService: librarianService}
}

// RegisterRequest carries the new account's credentials.
type RegisterRequest struct {
	Email    string
	Password string
}

// RegisterResponse describes the created account. The password hash never
// leaves the domain layer.
type RegisterResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Execute validates, hashes and stores the account.
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	l, err := uc.librarianService.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		ID:        l.ID,
		Email:     l.Email,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}, nil
}
