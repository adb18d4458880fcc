package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := New(ErrCodeBookNotFound, "book not found")
	assert.Equal(t, "[40402] book not found", plain.Error())

	wrapped := Wrap(errors.New("dial tcp: refused"), "database error")
	assert.Equal(t, "[50000] database error: dial tcp: refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, "wrapped")

	assert.ErrorIs(t, err, cause)
}

func TestGetAppError(t *testing.T) {
	appErr := New(ErrCodeNoCopiesAvailable, "no available copies of this book")

	// Direct AppError comes back as-is.
	assert.Same(t, appErr, GetAppError(appErr))

	// An AppError wrapped in a plain error is still found.
	wrapped := fmt.Errorf("use case failed: %w", appErr)
	assert.Same(t, appErr, GetAppError(wrapped))

	// Unknown errors become internal.
	got := GetAppError(errors.New("mystery"))
	require.NotNil(t, got)
	assert.Equal(t, ErrCodeInternal, got.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeBorrowLimit, "reader already has 3 borrowed books")

	assert.True(t, IsCode(err, ErrCodeBorrowLimit))
	assert.False(t, IsCode(err, ErrCodeNoCopiesAvailable))
	assert.True(t, IsCode(fmt.Errorf("wrapped: %w", err), ErrCodeBorrowLimit))
	assert.False(t, IsCode(errors.New("plain"), ErrCodeBorrowLimit))
	assert.False(t, IsCode(nil, ErrCodeBorrowLimit))
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrUnauthorized))
	assert.False(t, IsAppError(errors.New("plain")))
}
