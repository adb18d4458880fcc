package dto

// RegisterReaderRequest adds a reader to the roster.
type RegisterReaderRequest struct {
	Name  string `json:"name" binding:"required,max=100" example:"Grace Hopper"`
	Email string `json:"email" binding:"required,email" example:"grace@example.com"`
}

// UpdateReaderRequest is a partial update; absent fields are untouched.
type UpdateReaderRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// ReaderResponse is the roster view of a reader.
type ReaderResponse struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"Grace Hopper"`
	Email     string `json:"email" example:"grace@example.com"`
	CreatedAt string `json:"created_at" example:"2026-01-15T10:30:00Z"`
	UpdatedAt string `json:"updated_at" example:"2026-01-15T10:30:00Z"`
}

// ListReadersResponse wraps the roster listing.
type ListReadersResponse struct {
	Readers []ReaderResponse `json:"readers"`
	Total   int              `json:"total" example:"17"`
}
