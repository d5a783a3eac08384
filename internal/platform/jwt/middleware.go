package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/users/domain/entity"
)

// ContextAuthUser is the gin context key under which AuthRequired stores the
// resolved entity.AuthUser.
const ContextAuthUser = "authUser"

// TokenParser validates a bearer token and returns the user ID it carries.
type TokenParser interface {
	ParseToken(token string) (uint, error)
}

// UserFinder resolves a user ID to a stored user. The lookup runs on every
// request so a deleted account stops authenticating immediately.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that validates the bearer token,
// resolves it to a stored user, and attaches the identity to the request
// context for downstream handlers.
func AuthRequired(tokens TokenParser, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := tokens.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// A valid token for a user that no longer exists is still rejected.
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextAuthUser, entity.AuthUser{ID: user.ID, Type: user.Type})
		c.Next()
	}
}

// AdminRequired returns a Gin middleware that rejects non-admin requesters.
// It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := AuthUserFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		if !auth.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// AuthUserFrom reads the identity attached by AuthRequired.
func AuthUserFrom(c *gin.Context) (entity.AuthUser, bool) {
	v, ok := c.Get(ContextAuthUser)
	if !ok {
		return entity.AuthUser{}, false
	}
	auth, ok := v.(entity.AuthUser)
	return auth, ok
}
