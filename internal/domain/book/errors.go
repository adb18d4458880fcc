package book

import (
	apperrors "github.com/adilzhan/libra/pkg/errors"
)

var (
	// ErrBookNotFound: the referenced book does not exist.
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "book not found")

	// ErrISBNDuplicate: another catalog entry already carries this ISBN.
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN already exists")

	// ErrInvalidISBN: ISBN is present but not 10 or 13 digits.
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN must be 10 or 13 digits")

	// ErrInvalidCopies: copy count would become negative.
	ErrInvalidCopies = apperrors.New(apperrors.ErrCodeInvalidParams, "copies must not be negative")

	// ErrInvalidTitle: title or author missing.
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "title and author are required")

	// ErrNoCopiesAvailable: borrow attempted with zero available copies.
	ErrNoCopiesAvailable = apperrors.New(apperrors.ErrCodeNoCopiesAvailable, "no available copies of this book")

	// ErrHasActiveBorrows: deletion refused while borrow records are outstanding.
	ErrHasActiveBorrows = apperrors.New(apperrors.ErrCodeHasActiveBorrows, "book has outstanding borrow records")
)
