package handler

import (
	"github.com/gin-gonic/gin"

	appreader "github.com/adilzhan/libra/internal/application/reader"
	"github.com/adilzhan/libra/internal/interface/http/dto"
	apperrors "github.com/adilzhan/libra/pkg/errors"
	"github.com/adilzhan/libra/pkg/response"
)

// ReaderHandler serves the roster endpoints.
type ReaderHandler struct {
	registerReaderUseCase *appreader.RegisterReaderUseCase
	getReaderUseCase      *appreader.GetReaderUseCase
	listReadersUseCase    *appreader.ListReadersUseCase
	updateReaderUseCase   *appreader.UpdateReaderUseCase
	deleteReaderUseCase   *appreader.DeleteReaderUseCase
}

// NewReaderHandler creates the roster handler.
func NewReaderHandler(
	registerReaderUseCase *appreader.RegisterReaderUseCase,
	getReaderUseCase *appreader.GetReaderUseCase,
	listReadersUseCase *appreader.ListReadersUseCase,
	updateReaderUseCase *appreader.UpdateReaderUseCase,
	deleteReaderUseCase *appreader.DeleteReaderUseCase,
) *ReaderHandler {
	return &ReaderHandler{
		registerReaderUseCase: registerReaderUseCase,
		getReaderUseCase:      getReaderUseCase,
		listReadersUseCase:    listReadersUseCase,
		updateReaderUseCase:   updateReaderUseCase,
		deleteReaderUseCase:   deleteReaderUseCase,
	}
}

// RegisterReader adds a reader to the roster.
// @Summary      Register a reader
// @Tags         readers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.RegisterReaderRequest true "reader attributes"
// @Success      200 {object} response.Response{data=dto.ReaderResponse}
// @Router       /api/v1/readers [post]
func (h *ReaderHandler) RegisterReader(c *gin.Context) {
	var req dto.RegisterReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "malformed request body: "+err.Error())
		return
	}

	result, err := h.registerReaderUseCase.Execute(c.Request.Context(), appreader.RegisterReaderRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReaderDTO(result))
}

// GetReader returns one roster entry.
// @Summary      Get a reader
// @Tags         readers
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "reader id"
// @Success      200 {object} response.Response{data=dto.ReaderResponse}
// @Router       /api/v1/readers/{id} [get]
func (h *ReaderHandler) GetReader(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getReaderUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReaderDTO(result))
}

// ListReaders returns the whole roster.
// @Summary      List readers
// @Tags         readers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.ListReadersResponse}
// @Router       /api/v1/readers [get]
func (h *ReaderHandler) ListReaders(c *gin.Context) {
	result, err := h.listReadersUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	readers := make([]dto.ReaderResponse, len(result.Readers))
	for i := range result.Readers {
		readers[i] = *toReaderDTO(&result.Readers[i])
	}
	response.Success(c, &dto.ListReadersResponse{Readers: readers, Total: result.Total})
}

// UpdateReader applies a partial update.
// @Summary      Update a reader
// @Tags         readers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "reader id"
// @Param        request body dto.UpdateReaderRequest true "fields to change"
// @Success      200 {object} response.Response{data=dto.ReaderResponse}
// @Router       /api/v1/readers/{id} [patch]
func (h *ReaderHandler) UpdateReader(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "malformed request body: "+err.Error())
		return
	}

	result, err := h.updateReaderUseCase.Execute(c.Request.Context(), id, appreader.UpdateReaderRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReaderDTO(result))
}

// DeleteReader removes a roster entry.
// @Summary      Delete a reader
// @Tags         readers
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "reader id"
// @Success      200 {object} response.Response
// @Router       /api/v1/readers/{id} [delete]
func (h *ReaderHandler) DeleteReader(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteReaderUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func toReaderDTO(r *appreader.ReaderResponse) *dto.ReaderResponse {
	return &dto.ReaderResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
