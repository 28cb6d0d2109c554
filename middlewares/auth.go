// Validates the access token and injects the caller's identity into the
// Gin context for downstream handlers.

package middlewares

import (
	"net/http"

	"github.com/adhilX/Stock-Image-Platform/global"
	"github.com/adhilX/Stock-Image-Platform/utils"

	"github.com/gin-gonic/gin"
)

// Auth returns a Gin middleware that validates the x-access-token header
// and stores the user ID and email in the request context. Requests with a
// missing, malformed or expired token are rejected with 401 before any
// handler runs.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(global.AccessTokenHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "access token is required"})
			return
		}

		id, email, err := utils.ParseAccessToken(jwtSecret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(global.CtxUserIDKey, id)
		c.Set(global.CtxUserEmailKey, email)
		c.Next()
	}
}

// UserID pulls the authenticated user's ID out of the Gin context. The
// bool is false when the auth middleware did not run (programming error,
// handlers treat it as unauthenticated).
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(global.CtxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
