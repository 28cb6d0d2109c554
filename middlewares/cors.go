package middlewares

import (
	"net/http"

	"github.com/adhilX/Stock-Image-Platform/global"

	"github.com/gin-gonic/gin"
)

// CORS allows the configured SPA origin to call the API with credentials
// (the refresh cookie needs Allow-Credentials, which forbids a "*" origin).
// Preflight OPTIONS requests are answered here with 204.
func CORS(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+global.AccessTokenHeader)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
