package borrow

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilzhan/libra/internal/domain/book"
	"github.com/adilzhan/libra/internal/domain/borrow"
	"github.com/adilzhan/libra/internal/domain/reader"
)

func TestBorrowBook(t *testing.T) {
	env := newTestEnv()
	env.store.addBook(1, 3)
	env.store.addReader(10)

	resp, err := env.borrowUseCase().Execute(context.Background(), BorrowBookRequest{BookID: 1, ReaderID: 10})
	require.NoError(t, err)

	assert.NotZero(t, resp.RecordID)
	assert.Equal(t, uint(1), resp.BookID)
	assert.Equal(t, uint(10), resp.ReaderID)
	assert.NotEmpty(t, resp.BorrowDate)

	assert.Equal(t, 2, env.store.books[1].Copies)
	assert.Equal(t, 1, env.outstandingFor(10))
	assert.Equal(t, []string{"borrow.recorded"}, env.publisher.published())
}

func TestBorrowBook_BookNotFound(t *testing.T) {
	env := newTestEnv()
	env.store.addReader(10)

	_, err := env.borrowUseCase().Execute(context.Background(), BorrowBookRequest{BookID: 99, ReaderID: 10})
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.Empty(t, env.publisher.published())
}

func TestBorrowBook_ReaderNotFound(t *testing.T) {
	env := newTestEnv()
	env.store.addBook(1, 3)

	_, err := env.borrowUseCase().Execute(context.Background(), BorrowBookRequest{BookID: 1, ReaderID: 99})
	assert.ErrorIs(t, err, reader.ErrReaderNotFound)
	// Nothing committed: copies untouched, no ledger entry.
	assert.Equal(t, 3, env.store.books[1].Copies)
	assert.Empty(t, env.store.records)
}

func TestBorrowBook_NoCopiesAvailable(t *testing.T) {
	env := newTestEnv()
	env.store.addBook(1, 0)
	env.store.addReader(10)

	_, err := env.borrowUseCase().Execute(context.Background(), BorrowBookRequest{BookID: 1, ReaderID: 10})
	assert.ErrorIs(t, err, book.ErrNoCopiesAvailable)
	assert.Empty(t, env.store.records)
}

func TestBorrowBook_CapEnforced(t *testing.T) {
	env := newTestEnv()
	env.store.addReader(10)
	for id := uint(1); id <= 4; id++ {
		env.store.addBook(id, 1)
	}

	uc := env.borrowUseCase()
	for id := uint(1); id <= 3; id++ {
		_, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: id, ReaderID: 10})
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 4, ReaderID: 10})
	assert.ErrorIs(t, err, borrow.ErrBorrowLimitReached)
	assert.Equal(t, 3, env.outstandingFor(10))
	// The fourth book's copy was not consumed.
	assert.Equal(t, 1, env.store.books[4].Copies)
}

func TestBorrowBook_CapCountsAcrossBooks(t *testing.T) {
	env := newTestEnv()
	env.store.addReader(10)
	env.store.addBook(1, 5)
	env.store.addBook(2, 5)

	uc := env.borrowUseCase()
	// Multiple copies of the same title count individually.
	_, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, ReaderID: 10})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, ReaderID: 10})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), BorrowBookRequest{BookID: 2, ReaderID: 10})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), BorrowBookRequest{BookID: 2, ReaderID: 10})
	assert.ErrorIs(t, err, borrow.ErrBorrowLimitReached)
}

func TestBorrowBook_ConcurrentLastCopy(t *testing.T) {
	env := newTestEnv()
	env.store.addBook(1, 1)
	for id := uint(10); id < 20; id++ {
		env.store.addReader(id)
	}

	uc := env.borrowUseCase()

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), BorrowBookRequest{
				BookID:   1,
				ReaderID: uint(10 + i),
			})
		}(i)
	}
	wg.Wait()

	var successes, rejections int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			assert.ErrorIs(t, err, book.ErrNoCopiesAvailable)
			rejections++
		}
	}

	// Exactly one borrower gets the last copy.
	assert.Equal(t, 1, successes)
	assert.Equal(t, 9, rejections)
	assert.Equal(t, 0, env.store.books[1].Copies)
	assert.Len(t, env.store.records, 1)
}

func TestBorrowBook_ConcurrentSameReaderCap(t *testing.T) {
	env := newTestEnv()
	env.store.addReader(10)
	for id := uint(1); id <= 10; id++ {
		env.store.addBook(id, 1)
	}

	uc := env.borrowUseCase()

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), BorrowBookRequest{
				BookID:   uint(1 + i),
				ReaderID: 10,
			})
		}(i)
	}
	wg.Wait()

	var successes int
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, borrow.ErrBorrowLimitReached)
		}
	}

	// The cap holds under concurrency: exactly three borrows commit.
	assert.Equal(t, borrow.MaxActiveBorrows, successes)
	assert.Equal(t, borrow.MaxActiveBorrows, env.outstandingFor(10))
}
