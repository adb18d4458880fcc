package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adilzhan/libra/internal/domain/reader"
	apperrors "github.com/adilzhan/libra/pkg/errors"
)

// readerRepository implements reader.Repository on MySQL.
type readerRepository struct {
	db *gorm.DB
}

// NewReaderRepository creates the roster repository.
func NewReaderRepository(db *gorm.DB) reader.Repository {
	return &readerRepository{db: db}
}

func (r *readerRepository) Create(ctx context.Context, rd *reader.Reader) error {
	model := &ReaderModel{
		Name:  rd.Name,
		Email: rd.Email,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return reader.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "failed to create reader")
	}

	rd.ID = model.ID
	rd.CreatedAt = model.CreatedAt
	rd.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *readerRepository) FindByID(ctx context.Context, id uint) (*reader.Reader, error) {
	var model ReaderModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reader.ErrReaderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query reader")
	}
	return toReaderEntity(&model), nil
}

// LockByID issues SELECT ... FOR UPDATE on the reader row. The borrow
// transaction takes this lock before counting outstanding records, so two
// concurrent borrows by the same reader serialize and the cap holds.
func (r *readerRepository) LockByID(ctx context.Context, id uint) (*reader.Reader, error) {
	var model ReaderModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reader.ErrReaderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to lock reader")
	}
	return toReaderEntity(&model), nil
}

func (r *readerRepository) Update(ctx context.Context, rd *reader.Reader) error {
	model := &ReaderModel{
		ID:        rd.ID,
		Name:      rd.Name,
		Email:     rd.Email,
		CreatedAt: rd.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return reader.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "failed to update reader")
	}

	rd.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *readerRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ReaderModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete reader")
	}
	if result.RowsAffected == 0 {
		return reader.ErrReaderNotFound
	}
	return nil
}

func (r *readerRepository) List(ctx context.Context) ([]*reader.Reader, error) {
	var models []ReaderModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to list readers")
	}

	readers := make([]*reader.Reader, len(models))
	for i := range models {
		readers[i] = toReaderEntity(&models[i])
	}
	return readers, nil
}

func toReaderEntity(model *ReaderModel) *reader.Reader {
	return &reader.Reader{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
