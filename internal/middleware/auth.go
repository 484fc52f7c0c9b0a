package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"awkwardturtle/api/internal/apperr"
	"awkwardturtle/api/internal/service"
)

// CurrentUserKey is the gin context key holding the authenticated
// models.User set by Auth.
const CurrentUserKey = "current_user"

// Auth resolves the session cookie into a user. Any failure is a 401;
// expired and tampered tokens are not distinguished.
func Auth(cookieName string, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": apperr.Detail(err)})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
