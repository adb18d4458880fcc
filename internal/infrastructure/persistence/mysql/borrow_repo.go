package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adilzhan/libra/internal/domain/borrow"
	apperrors "github.com/adilzhan/libra/pkg/errors"
)

// borrowRepository implements borrow.Repository on MySQL.
type borrowRepository struct {
	db *gorm.DB
}

// NewBorrowRepository creates the ledger repository.
func NewBorrowRepository(db *gorm.DB) borrow.Repository {
	return &borrowRepository{db: db}
}

func (r *borrowRepository) Create(ctx context.Context, rec *borrow.Record) error {
	model := &BorrowRecordModel{
		BookID:     rec.BookID,
		ReaderID:   rec.ReaderID,
		BorrowDate: rec.BorrowDate,
		ReturnDate: rec.ReturnDate,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create borrow record")
	}

	rec.ID = model.ID
	return nil
}

// FindActiveForUpdate locks the oldest outstanding record for the pair.
// Under FOR UPDATE a concurrent return of the same record blocks here until
// the first transaction commits, re-evaluates the return_date IS NULL
// predicate against the committed row and falls through to ErrNoActiveBorrow.
func (r *borrowRepository) FindActiveForUpdate(ctx context.Context, bookID, readerID uint) (*borrow.Record, error) {
	var model BorrowRecordModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("book_id = ? AND reader_id = ? AND return_date IS NULL", bookID, readerID).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrow.ErrNoActiveBorrow
		}
		return nil, apperrors.Wrap(err, "failed to lock borrow record")
	}
	return toRecordEntity(&model), nil
}

func (r *borrowRepository) CountActiveByReader(ctx context.Context, readerID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BorrowRecordModel{}).
		Where("reader_id = ? AND return_date IS NULL", readerID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count active borrows")
	}
	return count, nil
}

func (r *borrowRepository) CountActiveByBook(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BorrowRecordModel{}).
		Where("book_id = ? AND return_date IS NULL", bookID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count active borrows")
	}
	return count, nil
}

func (r *borrowRepository) Update(ctx context.Context, rec *borrow.Record) error {
	result := getDB(ctx, r.db).Model(&BorrowRecordModel{}).
		Where("id = ?", rec.ID).
		Update("return_date", rec.ReturnDate)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update borrow record")
	}
	if result.RowsAffected == 0 {
		return borrow.ErrNoActiveBorrow
	}
	return nil
}

// ListWithBooks joins the ledger with the catalog. All records are returned,
// returned ones included; the join drops nothing because books with
// outstanding records cannot be deleted and soft-deleted books keep their row.
func (r *borrowRepository) ListWithBooks(ctx context.Context) ([]borrow.RecordWithBook, error) {
	var rows []struct {
		BorrowRecordModel
		Title  string
		Author string
	}

	err := getDB(ctx, r.db).
		Table("borrow_records").
		Select("borrow_records.*, books.title, books.author").
		Joins("JOIN books ON books.id = borrow_records.book_id").
		Order("borrow_records.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list borrow records")
	}

	records := make([]borrow.RecordWithBook, len(rows))
	for i := range rows {
		records[i] = borrow.RecordWithBook{
			Record: *toRecordEntity(&rows[i].BorrowRecordModel),
			Title:  rows[i].Title,
			Author: rows[i].Author,
		}
	}
	return records, nil
}

func toRecordEntity(model *BorrowRecordModel) *borrow.Record {
	return &borrow.Record{
		ID:         model.ID,
		BookID:     model.BookID,
		ReaderID:   model.ReaderID,
		BorrowDate: model.BorrowDate,
		ReturnDate: model.ReturnDate,
	}
}
