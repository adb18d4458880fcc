// Package dto holds the HTTP request and response shapes. Binding tags do the
// structural validation; business rules stay in the domain layer.
package dto

// RegisterRequest creates a librarian account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@library.org"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"shelf42pass"`
}

// RegisterResponse returns the created account.
type RegisterResponse struct {
	ID        uint   `json:"id" example:"1"`
	Email     string `json:"email" example:"ada@library.org"`
	CreatedAt string `json:"created_at" example:"2026-01-15T10:30:00Z"`
}

// LoginRequest submits credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@library.org"`
	Password string `json:"password" binding:"required" example:"shelf42pass"`
}

// LoginResponse returns the token pair.
type LoginResponse struct {
	ID           uint   `json:"id" example:"1"`
	Email        string `json:"email" example:"ada@library.org"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in" example:"7200"` // seconds
}
