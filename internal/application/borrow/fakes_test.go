package borrow

import (
	"context"
	"sync"

	"github.com/adilzhan/libra/internal/domain/book"
	"github.com/adilzhan/libra/internal/domain/borrow"
	"github.com/adilzhan/libra/internal/domain/reader"
)

// fakeStore is an in-memory stand-in for the database. All access goes
// through fakeTxManager, which serializes transactions with a mutex and
// restores a snapshot on error, mimicking commit/rollback.
type fakeStore struct {
	mu      sync.Mutex
	books   map[uint]*book.Book
	readers map[uint]*reader.Reader
	records []*borrow.Record
	nextID  uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		books:   make(map[uint]*book.Book),
		readers: make(map[uint]*reader.Reader),
		nextID:  1,
	}
}

func (s *fakeStore) addBook(id uint, copies int) {
	s.books[id] = &book.Book{ID: id, Title: "Test Book", Author: "Author", Copies: copies}
}

func (s *fakeStore) addReader(id uint) {
	s.readers[id] = &reader.Reader{ID: id, Name: "Test Reader", Email: "reader@example.com"}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	cp.nextID = s.nextID
	for id, b := range s.books {
		c := *b
		cp.books[id] = &c
	}
	for id, r := range s.readers {
		c := *r
		cp.readers[id] = &c
	}
	for _, rec := range s.records {
		c := *rec
		if rec.ReturnDate != nil {
			d := *rec.ReturnDate
			c.ReturnDate = &d
		}
		cp.records = append(cp.records, &c)
	}
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.books = snap.books
	s.readers = snap.readers
	s.records = snap.records
	s.nextID = snap.nextID
}

// fakeTxManager serializes transactions and rolls the store back when the
// unit of work fails, so invariants can be asserted after concurrent runs.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

type fakeBookRepo struct {
	store *fakeStore
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	b.ID = r.store.nextID
	r.store.nextID++
	r.store.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.store.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	c := *b
	return &c, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) Update(_ context.Context, b *book.Book) error {
	if _, ok := r.store.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	c := *b
	r.store.books[b.ID] = &c
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.store.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.store.books, id)
	return nil
}

func (r *fakeBookRepo) List(_ context.Context) ([]*book.Book, error) {
	var books []*book.Book
	for _, b := range r.store.books {
		c := *b
		books = append(books, &c)
	}
	return books, nil
}

func (r *fakeBookRepo) UpdateCopies(_ context.Context, id uint, delta int) error {
	b, ok := r.store.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Copies+delta < 0 {
		return book.ErrNoCopiesAvailable
	}
	b.Copies += delta
	return nil
}

type fakeReaderRepo struct {
	store *fakeStore
}

func (r *fakeReaderRepo) Create(_ context.Context, rd *reader.Reader) error {
	rd.ID = r.store.nextID
	r.store.nextID++
	r.store.readers[rd.ID] = rd
	return nil
}

func (r *fakeReaderRepo) FindByID(_ context.Context, id uint) (*reader.Reader, error) {
	rd, ok := r.store.readers[id]
	if !ok {
		return nil, reader.ErrReaderNotFound
	}
	c := *rd
	return &c, nil
}

func (r *fakeReaderRepo) LockByID(ctx context.Context, id uint) (*reader.Reader, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeReaderRepo) Update(_ context.Context, rd *reader.Reader) error {
	if _, ok := r.store.readers[rd.ID]; !ok {
		return reader.ErrReaderNotFound
	}
	c := *rd
	r.store.readers[rd.ID] = &c
	return nil
}

func (r *fakeReaderRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.store.readers[id]; !ok {
		return reader.ErrReaderNotFound
	}
	delete(r.store.readers, id)
	return nil
}

func (r *fakeReaderRepo) List(_ context.Context) ([]*reader.Reader, error) {
	var readers []*reader.Reader
	for _, rd := range r.store.readers {
		c := *rd
		readers = append(readers, &c)
	}
	return readers, nil
}

type fakeBorrowRepo struct {
	store *fakeStore
}

func (r *fakeBorrowRepo) Create(_ context.Context, rec *borrow.Record) error {
	rec.ID = r.store.nextID
	r.store.nextID++
	c := *rec
	r.store.records = append(r.store.records, &c)
	return nil
}

func (r *fakeBorrowRepo) FindActiveForUpdate(_ context.Context, bookID, readerID uint) (*borrow.Record, error) {
	for _, rec := range r.store.records {
		if rec.BookID == bookID && rec.ReaderID == readerID && rec.Outstanding() {
			c := *rec
			return &c, nil
		}
	}
	return nil, borrow.ErrNoActiveBorrow
}

func (r *fakeBorrowRepo) CountActiveByReader(_ context.Context, readerID uint) (int64, error) {
	var n int64
	for _, rec := range r.store.records {
		if rec.ReaderID == readerID && rec.Outstanding() {
			n++
		}
	}
	return n, nil
}

func (r *fakeBorrowRepo) CountActiveByBook(_ context.Context, bookID uint) (int64, error) {
	var n int64
	for _, rec := range r.store.records {
		if rec.BookID == bookID && rec.Outstanding() {
			n++
		}
	}
	return n, nil
}

func (r *fakeBorrowRepo) Update(_ context.Context, rec *borrow.Record) error {
	for _, stored := range r.store.records {
		if stored.ID == rec.ID {
			if rec.ReturnDate != nil {
				d := *rec.ReturnDate
				stored.ReturnDate = &d
			} else {
				stored.ReturnDate = nil
			}
			return nil
		}
	}
	return borrow.ErrNoActiveBorrow
}

func (r *fakeBorrowRepo) ListWithBooks(_ context.Context) ([]borrow.RecordWithBook, error) {
	var out []borrow.RecordWithBook
	for _, rec := range r.store.records {
		title, author := "", ""
		if b, ok := r.store.books[rec.BookID]; ok {
			title, author = b.Title, b.Author
		}
		out = append(out, borrow.RecordWithBook{Record: *rec, Title: title, Author: author})
	}
	return out, nil
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *capturingPublisher) Publish(routingKey string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, routingKey)
	return nil
}

func (p *capturingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

// testEnv bundles the fakes for a bookkeeping test.
type testEnv struct {
	store      *fakeStore
	bookRepo   *fakeBookRepo
	readerRepo *fakeReaderRepo
	borrowRepo *fakeBorrowRepo
	txManager  *fakeTxManager
	publisher  *capturingPublisher
}

func newTestEnv() *testEnv {
	store := newFakeStore()
	return &testEnv{
		store:      store,
		bookRepo:   &fakeBookRepo{store: store},
		readerRepo: &fakeReaderRepo{store: store},
		borrowRepo: &fakeBorrowRepo{store: store},
		txManager:  &fakeTxManager{store: store},
		publisher:  &capturingPublisher{},
	}
}

func (e *testEnv) borrowUseCase() *BorrowBookUseCase {
	return NewBorrowBookUseCase(e.borrowRepo, e.bookRepo, e.readerRepo, e.txManager, e.publisher)
}

func (e *testEnv) returnUseCase() *ReturnBookUseCase {
	return NewReturnBookUseCase(e.borrowRepo, e.bookRepo, e.readerRepo, e.txManager, e.publisher)
}

func (e *testEnv) outstandingFor(readerID uint) int {
	var n int
	for _, rec := range e.store.records {
		if rec.ReaderID == readerID && rec.Outstanding() {
			n++
		}
	}
	return n
}
