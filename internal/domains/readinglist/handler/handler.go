package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"litshelf-backend/internal/domains/readinglist/model"
	"litshelf-backend/internal/domains/readinglist/service"
	"litshelf-backend/internal/shared/middleware"
	"litshelf-backend/internal/shared/response"
)

type ReadingListHandler struct {
	readingListService service.ServiceInterface
}

func NewReadingListHandler(readingListService service.ServiceInterface) *ReadingListHandler {
	return &ReadingListHandler{readingListService: readingListService}
}

// AddOrMoveBook sets a book's reading status for the current user.
// PUT /api/v1/reading-list
func (h *ReadingListHandler) AddOrMoveBook(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req model.AddOrMoveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.readingListService.AddOrMoveBook(c.Request.Context(), userID, req); err != nil {
		mapReadingListError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": req.Status})
}

// RemoveBook takes a book off the current user's reading list.
// DELETE /api/v1/reading-list/:bookId
func (h *ReadingListHandler) RemoveBook(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.readingListService.RemoveBook(c.Request.Context(), userID, bookID); err != nil {
		mapReadingListError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// ListByStatus returns the current user's reading list grouped by status.
// GET /api/v1/reading-list
func (h *ReadingListHandler) ListByStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	buckets, err := h.readingListService.ListByStatus(c.Request.Context(), userID)
	if err != nil {
		mapReadingListError(c, err)
		return
	}

	response.Success(c, http.StatusOK, buckets)
}

func mapReadingListError(c *gin.Context, err error) {
	var rdlErr *model.ReadingListError
	if errors.As(err, &rdlErr) {
		switch rdlErr.Code {
		case model.ErrCodeValidation:
			response.ErrorResponse(c, http.StatusBadRequest, rdlErr.Code, rdlErr.Message)
		case model.ErrCodeNotTracked:
			response.ErrorResponse(c, http.StatusNotFound, rdlErr.Code, rdlErr.Message)
		default:
			response.InternalServerError(c, "an error occurred")
		}
		return
	}

	response.InternalServerError(c, "an error occurred")
}
