package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"litshelf-backend/internal/domains/collection/model"
	"litshelf-backend/internal/domains/collection/service"
	"litshelf-backend/internal/shared/middleware"
	"litshelf-backend/internal/shared/response"
)

type CollectionHandler struct {
	collectionService service.ServiceInterface
}

func NewCollectionHandler(collectionService service.ServiceInterface) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// CreateCollection creates a collection for the current user.
// POST /api/v1/collections
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req model.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	collection, err := h.collectionService.CreateCollection(c.Request.Context(), userID, req)
	if err != nil {
		mapCollectionError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, collection)
}

// ListCollections lists the current user's collections.
// GET /api/v1/collections
func (h *CollectionHandler) ListCollections(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	collections, err := h.collectionService.ListCollections(c.Request.Context(), userID)
	if err != nil {
		mapCollectionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, collections)
}

// GetEntries lists a collection's books in display order.
// GET /api/v1/collections/:id/books
func (h *CollectionHandler) GetEntries(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid collection id")
		return
	}

	entries, err := h.collectionService.GetEntries(c.Request.Context(), collectionID)
	if err != nil {
		mapCollectionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"books": entries})
}

// AddBook appends a book to a collection.
// POST /api/v1/collections/:id/books
func (h *CollectionHandler) AddBook(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid collection id")
		return
	}

	var req model.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	position, err := h.collectionService.AddBook(c.Request.Context(), userID, collectionID, req)
	if err != nil {
		mapCollectionError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"position": position})
}

// RemoveBook removes a book from a collection.
// DELETE /api/v1/collections/:id/books/:bookId
func (h *CollectionHandler) RemoveBook(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid collection id")
		return
	}
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.collectionService.RemoveBook(c.Request.Context(), userID, collectionID, bookID); err != nil {
		mapCollectionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// MoveEntry moves a book one step up or down within a collection.
// PATCH /api/v1/collections/:id/books/:bookId/position
func (h *CollectionHandler) MoveEntry(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid collection id")
		return
	}
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.MoveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.collectionService.MoveEntry(c.Request.Context(), userID, collectionID, bookID, req); err != nil {
		mapCollectionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"moved": true})
}

// DeleteCollection removes a collection and its entries.
// DELETE /api/v1/collections/:id
func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid collection id")
		return
	}

	if err := h.collectionService.DeleteCollection(c.Request.Context(), userID, collectionID); err != nil {
		mapCollectionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// SearchCollections searches public collections by name or owner username.
// POST /api/v1/collections/search
func (h *CollectionHandler) SearchCollections(c *gin.Context) {
	var req model.SearchCollectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	results, err := h.collectionService.SearchCollections(c.Request.Context(), req)
	if err != nil {
		mapCollectionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

func mapCollectionError(c *gin.Context, err error) {
	var colErr *model.CollectionError
	if errors.As(err, &colErr) {
		switch colErr.Code {
		case model.ErrCodeValidation:
			response.ErrorResponse(c, http.StatusBadRequest, colErr.Code, colErr.Message)
		case model.ErrCodeCollectionNotFound, model.ErrCodeEntryNotFound:
			response.ErrorResponse(c, http.StatusNotFound, colErr.Code, colErr.Message)
		case model.ErrCodeDuplicateName, model.ErrCodeDuplicateEntry:
			response.ErrorResponse(c, http.StatusConflict, colErr.Code, colErr.Message)
		case model.ErrCodeNotOwner:
			response.ErrorResponse(c, http.StatusForbidden, colErr.Code, colErr.Message)
		default:
			response.InternalServerError(c, "an error occurred")
		}
		return
	}

	response.InternalServerError(c, "an error occurred")
}
