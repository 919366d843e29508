package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"litshelf-backend/internal/shared/response"
	"litshelf-backend/pkg/jwt"
)

const (
	// ContextUserID is the gin context key carrying the authenticated user id.
	ContextUserID = "user_id"
	// ContextUsername is the gin context key carrying the session username.
	ContextUsername = "username"
)

// Auth validates the Bearer token and injects the user identity into the
// request context. Requests without a valid session get 401 NOT_AUTHENTICATED.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorResponse(c, 401, "NOT_AUTHENTICATED", "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorResponse(c, 401, "NOT_AUTHENTICATED", "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.ErrorResponse(c, 401, "NOT_AUTHENTICATED", "invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.ErrorResponse(c, 401, "NOT_AUTHENTICATED", "invalid user id in token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by Auth.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	return userID, ok
}
