package dto

// BorrowRequest identifies the book and the reader for a borrow or a return.
type BorrowRequest struct {
	BookID   uint `json:"book_id" binding:"required" example:"1"`
	ReaderID uint `json:"reader_id" binding:"required" example:"1"`
}

// BorrowResponse describes the ledger entry created by a borrow.
type BorrowResponse struct {
	RecordID   uint   `json:"record_id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	ReaderID   uint   `json:"reader_id" example:"1"`
	BorrowDate string `json:"borrow_date" example:"2026-01-15T10:30:00Z"`
}

// ReturnResponse describes the ledger entry closed by a return.
type ReturnResponse struct {
	RecordID   uint   `json:"record_id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	ReaderID   uint   `json:"reader_id" example:"1"`
	BorrowDate string `json:"borrow_date" example:"2026-01-15T10:30:00Z"`
	ReturnDate string `json:"return_date" example:"2026-01-20T16:45:00Z"`
}

// BorrowRecordItem is one ledger entry in the listing, joined with its book.
type BorrowRecordItem struct {
	RecordID   uint   `json:"record_id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	Title      string `json:"title" example:"The Go Programming Language"`
	Author     string `json:"author" example:"Alan A. A. Donovan"`
	ReaderID   uint   `json:"reader_id" example:"1"`
	BorrowDate string `json:"borrow_date" example:"2026-01-15T10:30:00Z"`
	ReturnDate string `json:"return_date,omitempty" example:"2026-01-20T16:45:00Z"`
	Returned   bool   `json:"returned" example:"false"`
}

// ListBorrowRecordsResponse wraps the ledger listing.
type ListBorrowRecordsResponse struct {
	Records []BorrowRecordItem `json:"records"`
	Total   int                `json:"total" example:"120"`
}
