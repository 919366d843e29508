package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"litshelf-backend/internal/domains/catalog/model"
	"litshelf-backend/internal/domains/catalog/service"
	"litshelf-backend/internal/shared/response"
)

type CatalogHandler struct {
	catalogService service.ServiceInterface
}

func NewCatalogHandler(catalogService service.ServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// SearchBooks runs a catalog search from URL query state.
// GET /api/v1/books/search?search=dune&limit=5&page=2&minRating=3
func (h *CatalogHandler) SearchBooks(c *gin.Context) {
	req, err := model.ParseSearchBooksRequest(c.Request.URL.Query())
	if err != nil {
		mapCatalogError(c, err)
		return
	}

	resp, err := h.catalogService.SearchBooks(c.Request.Context(), req)
	if err != nil {
		mapCatalogError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Results, &response.Meta{
		Page:  resp.Page,
		Limit: resp.Limit,
		Total: resp.Total,
		Pages: resp.Pages,
	})
}

// GetBook fetches a registered book.
// GET /api/v1/books/:id
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	book, err := h.catalogService.GetBook(c.Request.Context(), id)
	if err != nil {
		mapCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

func mapCatalogError(c *gin.Context, err error) {
	var catErr *model.CatalogError
	if errors.As(err, &catErr) {
		switch catErr.Code {
		case model.ErrCodeValidation:
			response.ErrorResponse(c, http.StatusBadRequest, catErr.Code, catErr.Message)
		case model.ErrCodeBookNotFound:
			response.ErrorResponse(c, http.StatusNotFound, catErr.Code, catErr.Message)
		case model.ErrCodeUpstream:
			response.ErrorResponse(c, http.StatusBadGateway, catErr.Code, catErr.Message)
		default:
			response.InternalServerError(c, "an error occurred")
		}
		return
	}

	response.InternalServerError(c, "an error occurred")
}
