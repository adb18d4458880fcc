package handler

import (
	"github.com/gin-gonic/gin"

	appborrow "github.com/adilzhan/libra/internal/application/borrow"
	"github.com/adilzhan/libra/internal/interface/http/dto"
	apperrors "github.com/adilzhan/libra/pkg/errors"
	"github.com/adilzhan/libra/pkg/response"
)

// BorrowHandler serves the bookkeeping endpoints.
type BorrowHandler struct {
	borrowBookUseCase  *appborrow.BorrowBookUseCase
	returnBookUseCase  *appborrow.ReturnBookUseCase
	listRecordsUseCase *appborrow.ListRecordsUseCase
}

// NewBorrowHandler creates the bookkeeping handler.
func NewBorrowHandler(
	borrowBookUseCase *appborrow.BorrowBookUseCase,
	returnBookUseCase *appborrow.ReturnBookUseCase,
	listRecordsUseCase *appborrow.ListRecordsUseCase,
) *BorrowHandler {
	return &BorrowHandler{
		borrowBookUseCase:  borrowBookUseCase,
		returnBookUseCase:  returnBookUseCase,
		listRecordsUseCase: listRecordsUseCase,
	}
}

// BorrowBook records a borrow.
// @Summary      Borrow a book
// @Description  Creates an outstanding ledger entry and decrements available copies
// @Tags         borrow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BorrowRequest true "book and reader"
// @Success      200 {object} response.Response{data=dto.BorrowResponse}
// @Router       /api/v1/borrow [post]
func (h *BorrowHandler) BorrowBook(c *gin.Context) {
	var req dto.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "malformed request body: "+err.Error())
		return
	}

	result, err := h.borrowBookUseCase.Execute(c.Request.Context(), appborrow.BorrowBookRequest{
		BookID:   req.BookID,
		ReaderID: req.ReaderID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BorrowResponse{
		RecordID:   result.RecordID,
		BookID:     result.BookID,
		ReaderID:   result.ReaderID,
		BorrowDate: result.BorrowDate,
	})
}

// ReturnBook records a return.
// @Summary      Return a book
// @Description  Closes the oldest outstanding ledger entry for the pair and increments available copies
// @Tags         borrow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BorrowRequest true "book and reader"
// @Success      200 {object} response.Response{data=dto.ReturnResponse}
// @Router       /api/v1/borrow/return [post]
func (h *BorrowHandler) ReturnBook(c *gin.Context) {
	var req dto.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "malformed request body: "+err.Error())
		return
	}

	result, err := h.returnBookUseCase.Execute(c.Request.Context(), appborrow.ReturnBookRequest{
		BookID:   req.BookID,
		ReaderID: req.ReaderID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ReturnResponse{
		RecordID:   result.RecordID,
		BookID:     result.BookID,
		ReaderID:   result.ReaderID,
		BorrowDate: result.BorrowDate,
		ReturnDate: result.ReturnDate,
	})
}

// ListRecords returns the full borrow ledger.
// @Summary      List borrow records
// @Tags         borrow
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.ListBorrowRecordsResponse}
// @Router       /api/v1/borrow [get]
func (h *BorrowHandler) ListRecords(c *gin.Context) {
	result, err := h.listRecordsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	records := make([]dto.BorrowRecordItem, len(result.Records))
	for i, r := range result.Records {
		records[i] = dto.BorrowRecordItem{
			RecordID:   r.RecordID,
			BookID:     r.BookID,
			Title:      r.Title,
			Author:     r.Author,
			ReaderID:   r.ReaderID,
			BorrowDate: r.BorrowDate,
			ReturnDate: r.ReturnDate,
			Returned:   r.Returned,
		}
	}
	response.Success(c, &dto.ListBorrowRecordsResponse{Records: records, Total: result.Total})
}
