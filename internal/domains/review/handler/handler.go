package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"litshelf-backend/internal/domains/review/model"
	"litshelf-backend/internal/domains/review/service"
	"litshelf-backend/internal/shared/middleware"
	"litshelf-backend/internal/shared/response"
)

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// SubmitReview creates the current user's review for a book.
// POST /api/v1/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req model.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), userID, req)
	if err != nil {
		mapReviewError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, review)
}

// EditReview overwrites the current user's review.
// PUT /api/v1/reviews/:id
func (h *ReviewHandler) EditReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	var req model.EditReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.reviewService.EditReview(c.Request.Context(), userID, reviewID, req); err != nil {
		mapReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// DeleteReview removes the current user's review.
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		mapReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListByBook lists a book's reviews, newest first.
// GET /api/v1/books/:id/reviews
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	reviews, err := h.reviewService.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		mapReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// ListMine lists the current user's reviews with book titles.
// GET /api/v1/reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	reviews, err := h.reviewService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		mapReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// Statistics returns a book's aggregate rating picture.
// GET /api/v1/books/:id/reviews/stats
func (h *ReviewHandler) Statistics(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	stats, err := h.reviewService.Statistics(c.Request.Context(), bookID)
	if err != nil {
		mapReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func mapReviewError(c *gin.Context, err error) {
	var revErr *model.ReviewError
	if errors.As(err, &revErr) {
		switch revErr.Code {
		case model.ErrCodeValidation:
			response.ErrorResponse(c, http.StatusBadRequest, revErr.Code, revErr.Message)
		case model.ErrCodeReviewNotFound:
			response.ErrorResponse(c, http.StatusNotFound, revErr.Code, revErr.Message)
		case model.ErrCodeDuplicateReview:
			response.ErrorResponse(c, http.StatusConflict, revErr.Code, revErr.Message)
		case model.ErrCodeNotOwner:
			response.ErrorResponse(c, http.StatusForbidden, revErr.Code, revErr.Message)
		default:
			response.InternalServerError(c, "an error occurred")
		}
		return
	}

	response.InternalServerError(c, "an error occurred")
}
