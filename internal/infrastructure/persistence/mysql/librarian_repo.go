package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adilzhan/libra/internal/domain/librarian"
	apperrors "github.com/adilzhan/libra/pkg/errors"
)

// librarianRepository implements librarian.Repository on MySQL.
type librarianRepository struct {
	db *gorm.DB
}

// NewLibrarianRepository creates the account repository.
func NewLibrarianRepository(db *gorm.DB) librarian.Repository {
	return &librarianRepository{db: db}
}

func (r *librarianRepository) Create(ctx context.Context, l *librarian.Librarian) error {
	model := &LibrarianModel{
		Email:        l.Email,
		PasswordHash: l.PasswordHash,
		IsLibrarian:  l.IsLibrarian,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "failed to create librarian")
	}

	l.ID = model.ID
	l.CreatedAt = model.CreatedAt
	l.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *librarianRepository) FindByID(ctx context.Context, id uint) (*librarian.Librarian, error) {
	var model LibrarianModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLibrarianNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query librarian")
	}
	return toLibrarianEntity(&model), nil
}

func (r *librarianRepository) FindByEmail(ctx context.Context, email string) (*librarian.Librarian, error) {
	var model LibrarianModel
	err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLibrarianNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query librarian")
	}
	return toLibrarianEntity(&model), nil
}

func toLibrarianEntity(model *LibrarianModel) *librarian.Librarian {
	return &librarian.Librarian{
		ID:           model.ID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		IsLibrarian:  model.IsLibrarian,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
