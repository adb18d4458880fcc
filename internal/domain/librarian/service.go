package librarian

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/adilzhan/libra/pkg/errors"
)

// Service owns account rules: email format, password strength, hashing.
type Service interface {
	// Register creates an account. Email uniqueness is enforced by the
	// database unique index, not by a check-then-insert.
	Register(ctx context.Context, email, password string) (*Librarian, error)

	// Login verifies credentials and returns the account.
	Login(ctx context.Context, email, password string) (*Librarian, error)
}

type service struct {
	repo Repository
}

// NewService creates the account domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, password string) (*Librarian, error) {
	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "invalid email address")
	}
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	// bcrypt salts internally; cost 12 keeps hashing around a quarter second.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	l := NewLibrarian(email, string(hash))
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Librarian, error) {
	l, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists.
		if apperrors.IsCode(err, apperrors.ErrCodeLibrarianNotFound) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "failed to verify password")
	}

	return l, nil
}

func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// validatePasswordStrength requires 8-20 characters with at least one letter
// and one digit.
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasLetter || !hasDigit {
		return apperrors.ErrWeakPassword
	}

	return nil
}
