package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"litshelf-backend/internal/domains/profile/model"
	"litshelf-backend/internal/domains/profile/service"
	"litshelf-backend/internal/shared/middleware"
	"litshelf-backend/internal/shared/response"
)

type ProfileHandler struct {
	profileService service.ServiceInterface
}

func NewProfileHandler(profileService service.ServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetMe returns the current user's profile with follow counts.
// GET /api/v1/profiles/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	profile, counts, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		mapProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile, "follows": counts})
}

// GetByUsername returns a profile by username with follow counts.
// GET /api/v1/profiles/:username
func (h *ProfileHandler) GetByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.BadRequest(c, "username is required")
		return
	}

	profile, counts, err := h.profileService.GetProfileByUsername(c.Request.Context(), username)
	if err != nil {
		mapProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile, "follows": counts})
}

// UpdateMe overwrites the current user's editable profile fields.
// PUT /api/v1/profiles/me
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.profileService.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		mapProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// Follow adds a follow edge from the current user.
// POST /api/v1/profiles/:id/follow
func (h *ProfileHandler) Follow(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	followedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.profileService.Follow(c.Request.Context(), userID, followedID); err != nil {
		mapProfileError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"following": true})
}

// Unfollow removes the current user's follow edge.
// DELETE /api/v1/profiles/:id/follow
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	followedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.profileService.Unfollow(c.Request.Context(), userID, followedID); err != nil {
		mapProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"following": false})
}

// ListFollowers lists who follows a user.
// GET /api/v1/profiles/:id/followers
func (h *ProfileHandler) ListFollowers(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	entries, err := h.profileService.ListFollowers(c.Request.Context(), userID)
	if err != nil {
		mapProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"followers": entries})
}

// ListFollowing lists who a user follows.
// GET /api/v1/profiles/:id/following
func (h *ProfileHandler) ListFollowing(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	entries, err := h.profileService.ListFollowing(c.Request.Context(), userID)
	if err != nil {
		mapProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"following": entries})
}

func mapProfileError(c *gin.Context, err error) {
	var proErr *model.ProfileError
	if errors.As(err, &proErr) {
		switch proErr.Code {
		case model.ErrCodeValidation, model.ErrCodeSelfFollow:
			response.ErrorResponse(c, http.StatusBadRequest, proErr.Code, proErr.Message)
		case model.ErrCodeProfileNotFound, model.ErrCodeNotFollowing:
			response.ErrorResponse(c, http.StatusNotFound, proErr.Code, proErr.Message)
		case model.ErrCodeDuplicateFollow:
			response.ErrorResponse(c, http.StatusConflict, proErr.Code, proErr.Message)
		default:
			response.InternalServerError(c, "an error occurred")
		}
		return
	}

	response.InternalServerError(c, "an error occurred")
}
