package handlers

import (
	"errors"
	"net/http"

	"github.com/adhilX/Stock-Image-Platform/services"
	"github.com/adhilX/Stock-Image-Platform/utils/tokenstore"

	"github.com/gin-gonic/gin"
)

// serviceError maps a business-logic failure to its HTTP status and writes
// the JSON error body. Every error response in the API has the shape
// {"message": "..."}; unclassified errors fall through to 500.
func serviceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrImageNotFound), errors.Is(err, services.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, tokenstore.ErrInvalidRefreshToken):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrEmailExists):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
