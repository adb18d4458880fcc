package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBook_Apply_PartialMerge(t *testing.T) {
	b := NewBook("Old Title", "Old Author", 1999, "9780134190440", 2)

	err := b.Apply(Update{
		Title:  ptr("New Title"),
		Copies: ptr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "New Title", b.Title)
	assert.Equal(t, 5, b.Copies)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Old Author", b.Author)
	assert.Equal(t, 1999, b.Year)
	assert.Equal(t, "9780134190440", b.ISBN)
}

func TestBook_Apply_ZeroValuesAreApplied(t *testing.T) {
	b := NewBook("Title", "Author", 2015, "9780134190440", 2)

	// A present pointer to a zero value clears the field; only nil means
	// "leave unchanged".
	err := b.Apply(Update{
		Year: ptr(0),
		ISBN: ptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, b.Year)
	assert.Equal(t, "", b.ISBN)
	assert.Equal(t, "Title", b.Title)
}

func TestBook_Apply_NegativeCopiesRejected(t *testing.T) {
	b := NewBook("Title", "Author", 2015, "", 2)

	err := b.Apply(Update{Copies: ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidCopies)
	assert.Equal(t, 2, b.Copies)
}

func TestBook_HasAvailableCopies(t *testing.T) {
	b := NewBook("Title", "Author", 0, "", 1)
	assert.True(t, b.HasAvailableCopies())

	b.Copies = 0
	assert.False(t, b.HasAvailableCopies())
}

func TestIsValidISBN(t *testing.T) {
	valid := []string{
		"9780134190440",
		"978-0-13-419044-0",
		"0134190440",
		"0-13-419044-0",
		"043942089X",
	}
	for _, isbn := range valid {
		assert.True(t, isValidISBN(isbn), "expected valid: %s", isbn)
	}

	invalid := []string{
		"123",
		"97801341904401",
		"abcdefghij",
		"",
	}
	for _, isbn := range invalid {
		assert.False(t, isValidISBN(isbn), "expected invalid: %s", isbn)
	}
}
