package dto

// AddBookRequest creates a catalog entry. Year and ISBN are optional; copies
// defaults to 1 when omitted.
type AddBookRequest struct {
	Title  string `json:"title" binding:"required,max=200" example:"The Go Programming Language"`
	Author string `json:"author" binding:"required,max=100" example:"Alan A. A. Donovan"`
	Year   int    `json:"year" binding:"omitempty,min=0,max=2100" example:"2015"`
	ISBN   string `json:"isbn" binding:"omitempty,max=20" example:"9780134190440"`
	Copies *int   `json:"copies" binding:"omitempty,min=0" example:"3"`
}

// UpdateBookRequest is a partial update: absent fields keep their stored
// values, present fields overwrite. Pointers distinguish the two.
type UpdateBookRequest struct {
	Title  *string `json:"title" binding:"omitempty,max=200"`
	Author *string `json:"author" binding:"omitempty,max=100"`
	Year   *int    `json:"year" binding:"omitempty,min=0,max=2100"`
	ISBN   *string `json:"isbn" binding:"omitempty,max=20"`
	Copies *int    `json:"copies" binding:"omitempty,min=0"`
}

// BookResponse is the catalog view of a book.
type BookResponse struct {
	ID        uint   `json:"id" example:"1"`
	Title     string `json:"title" example:"The Go Programming Language"`
	Author    string `json:"author" example:"Alan A. A. Donovan"`
	Year      int    `json:"year,omitempty" example:"2015"`
	ISBN      string `json:"isbn,omitempty" example:"9780134190440"`
	Copies    int    `json:"copies" example:"3"`
	CreatedAt string `json:"created_at" example:"2026-01-15T10:30:00Z"`
	UpdatedAt string `json:"updated_at" example:"2026-01-15T10:30:00Z"`
}

// ListBooksResponse wraps the catalog listing.
type ListBooksResponse struct {
	Books []BookResponse `json:"books"`
	Total int            `json:"total" example:"42"`
}
