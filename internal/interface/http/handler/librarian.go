// Package handler binds HTTP routes to application use cases. Handlers only
// bind, delegate and translate; no business logic lives here.
package handler

import (
	"github.com/gin-gonic/gin"

	applibrarian "github.com/adilzhan/libra/internal/application/librarian"
	"github.com/adilzhan/libra/internal/interface/http/dto"
	"github.com/adilzhan/libra/internal/interface/http/middleware"
	apperrors "github.com/adilzhan/libra/pkg/errors"
	"github.com/adilzhan/libra/pkg/response"
)

// LibrarianHandler serves the account endpoints.
type LibrarianHandler struct {
	registerUseCase *applibrarian.RegisterUseCase
	loginUseCase    *applibrarian.LoginUseCase
	logoutUseCase   *applibrarian.LogoutUseCase
}

// NewLibrarianHandler creates the account handler.
func NewLibrarianHandler(
	registerUseCase *applibrarian.RegisterUseCase,
	loginUseCase *applibrarian.LoginUseCase,
	logoutUseCase *applibrarian.LogoutUseCase,
) *LibrarianHandler {
	return &LibrarianHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
	}
}

// Register creates a librarian account.
// @Summary      Register a librarian
// @Description  Creates a librarian account with a unique email
// @Tags         librarians
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "credentials"
// @Success      200 {object} response.Response{data=dto.RegisterResponse}
// @Router       /api/v1/librarians/register [post]
func (h *LibrarianHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "malformed request body: "+err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), applibrarian.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.RegisterResponse{
		ID:        result.ID,
		Email:     result.Email,
		CreatedAt: result.CreatedAt,
	})
}

// Login verifies credentials and returns a token pair.
// @Summary      Log in
// @Tags         librarians
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "credentials"
// @Success      200 {object} response.Response{data=dto.LoginResponse}
// @Router       /api/v1/librarians/login [post]
func (h *LibrarianHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "malformed request body: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), applibrarian.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LoginResponse{
		ID:           result.ID,
		Email:        result.Email,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Logout closes the session and revokes the presented token.
// @Summary      Log out
// @Tags         librarians
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/librarians/logout [post]
func (h *LibrarianHandler) Logout(c *gin.Context) {
	librarianID := middleware.MustGetLibrarianID(c)
	token := middleware.GetToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), librarianID, token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
