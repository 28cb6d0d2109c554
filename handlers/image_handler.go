package handlers

import (
	"net/http"
	"strconv"

	"github.com/adhilX/Stock-Image-Platform/middlewares"
	"github.com/adhilX/Stock-Image-Platform/models"
	"github.com/adhilX/Stock-Image-Platform/services"
	"github.com/adhilX/Stock-Image-Platform/storage"

	"github.com/gin-gonic/gin"
)

// ImageHandler bundles dependencies needed by the image endpoints.
// store is nil when object storage is not configured; the upload-url
// endpoint then answers 503 while everything else keeps working.
type ImageHandler struct {
	svc   services.ImageService
	store storage.ObjectStore
}

// NewImageHandler constructs the handler with its dependencies.
func NewImageHandler(svc services.ImageService, store storage.ObjectStore) *ImageHandler {
	return &ImageHandler{svc: svc, store: store}
}

// SaveImages handles POST /api/images (protected): batch creation of
// image records from locators the client already uploaded.
func (h *ImageHandler) SaveImages(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}
	var req models.SaveImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil { // rejects missing/empty array before any service call
		c.JSON(http.StatusBadRequest, gin.H{"message": "Images array is required"})
		return
	}
	saved, err := h.svc.SaveImages(userID, req.Images)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Images saved successfully", "images": saved})
}

// GetUserImages handles GET /api/images?page=1&limit=20 (protected).
func (h *ImageHandler) GetUserImages(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}
	var q models.ListImagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid pagination parameters"})
		return
	}

	result, err := h.svc.GetUserImages(userID, q.Page, q.Limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Images retrieved successfully",
		"data":    result.Data,
		"total":   result.Total,
		"page":    result.Page,
		"limit":   result.Limit,
		"hasMore": result.HasMore,
	})
}

// UpdateImage handles PUT /api/images/:id (protected).
func (h *ImageHandler) UpdateImage(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	var req models.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	img, err := h.svc.UpdateImage(id, userID, req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image updated successfully", "image": img})
}

// DeleteImage handles DELETE /api/images/:id (protected).
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	if err := h.svc.DeleteImage(id, userID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

// UpdateImageOrder handles PUT /api/images/order/update (protected):
// batch reorder of the caller's own images.
func (h *ImageHandler) UpdateImageOrder(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}
	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Images array with id and order is required"})
		return
	}
	if err := h.svc.UpdateImageOrder(userID, req.Images); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image order updated successfully"})
}

// UploadURL handles POST /api/images/upload-url (protected): hands the
// client a presigned PUT URL plus the locator to store afterwards.
func (h *ImageHandler) UploadURL(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "object storage not configured"})
		return
	}
	ticket, err := h.store.PresignUpload(c.Request.Context(), c.Query("ext"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// parseUint safely converts a numeric string to uint.
func parseUint(s string) (uint, error) {
	id64, err := strconv.ParseUint(s, 10, 0)
	return uint(id64), err
}
