package borrow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	rec := NewRecord(7, 3)

	assert.Equal(t, uint(7), rec.BookID)
	assert.Equal(t, uint(3), rec.ReaderID)
	assert.True(t, rec.Outstanding())
	assert.WithinDuration(t, time.Now(), rec.BorrowDate, time.Second)
}

func TestRecord_MarkReturned(t *testing.T) {
	rec := NewRecord(1, 1)
	at := time.Now()

	require.NoError(t, rec.MarkReturned(at))
	assert.False(t, rec.Outstanding())
	require.NotNil(t, rec.ReturnDate)
	assert.Equal(t, at, *rec.ReturnDate)
}

func TestRecord_MarkReturned_Twice(t *testing.T) {
	rec := NewRecord(1, 1)
	first := time.Now()
	require.NoError(t, rec.MarkReturned(first))

	err := rec.MarkReturned(time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyReturned)
	// The first return date must survive the failed second attempt.
	assert.Equal(t, first, *rec.ReturnDate)
}
