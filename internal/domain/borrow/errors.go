package borrow

import (
	apperrors "github.com/adilzhan/libra/pkg/errors"
)

var (
	// ErrBorrowLimitReached: the reader already holds MaxActiveBorrows books.
	ErrBorrowLimitReached = apperrors.New(apperrors.ErrCodeBorrowLimit, "reader already has 3 borrowed books")

	// ErrNoActiveBorrow: return requested for a pair with no outstanding record.
	ErrNoActiveBorrow = apperrors.New(apperrors.ErrCodeNoActiveBorrow, "no active borrow record found for this book and reader")

	// ErrAlreadyReturned: attempted second transition out of Returned.
	ErrAlreadyReturned = apperrors.New(apperrors.ErrCodeBusinessError, "borrow record already returned")
)
