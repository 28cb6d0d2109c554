// Catches panics and returns 500 without crashing the server.

package middlewares

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery responds with 500 and logs the panic value when a handler
// panics during request handling.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[panic] %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"message": "internal error"})
			}
		}()
		c.Next()
	}
}
