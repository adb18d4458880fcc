package reader

import (
	"context"
	"regexp"
)

// Service validates roster operations before they reach the repository.
type Service interface {
	RegisterReader(ctx context.Context, name, email string) (*Reader, error)
	GetReader(ctx context.Context, id uint) (*Reader, error)
	ListReaders(ctx context.Context) ([]*Reader, error)
	UpdateReader(ctx context.Context, id uint, upd Update) (*Reader, error)
	DeleteReader(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService creates the roster domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RegisterReader(ctx context.Context, name, email string) (*Reader, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	r := NewReader(name, email)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetReader(ctx context.Context, id uint) (*Reader, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListReaders(ctx context.Context) ([]*Reader, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateReader(ctx context.Context, id uint, upd Update) (*Reader, error) {
	if upd.Email != nil && !isValidEmail(*upd.Email) {
		return nil, ErrInvalidEmail
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, ErrInvalidName
	}

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Apply(upd)

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) DeleteReader(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}
