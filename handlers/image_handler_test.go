package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adhilX/Stock-Image-Platform/global"
	"github.com/adhilX/Stock-Image-Platform/mocks"
	"github.com/adhilX/Stock-Image-Platform/models"
	"github.com/adhilX/Stock-Image-Platform/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// asUser simulates the auth middleware having run for the given user.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(global.CtxUserIDKey, id)
		c.Next()
	}
}

func setupImages(svc *mocks.ImageServiceMock, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewImageHandler(svc, nil)
	g := r.Group("/api/images", asUser(userID))
	g.POST("", h.SaveImages)
	g.GET("", h.GetUserImages)
	g.PUT("/order/update", h.UpdateImageOrder)
	g.PUT("/:id", h.UpdateImage)
	g.DELETE("/:id", h.DeleteImage)
	g.POST("/upload-url", h.UploadURL)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSaveImages_EmptyArrayRejectedBeforeService(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 1)

	w := doJSON(r, http.MethodPost, "/api/images", gin.H{"images": []any{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Images array is required")
	svc.AssertNotCalled(t, "SaveImages", mock.Anything, mock.Anything)
}

func TestSaveImages_MissingArrayRejected(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 1)

	w := doJSON(r, http.MethodPost, "/api/images", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveImages_Created(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 1)

	inputs := []models.ImageInput{{Image: "a.jpg", Title: "A"}}
	saved := []models.Image{{ID: 1, UserID: 1, Image: "a.jpg", Title: "A", Order: 0}}
	svc.On("SaveImages", uint(1), inputs).Return(saved, nil)

	w := doJSON(r, http.MethodPost, "/api/images", models.SaveImagesRequest{Images: inputs})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
}

func TestGetUserImages_DefaultsAndEnvelope(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 1)

	svc.On("GetUserImages", uint(1), 1, 20).Return(&models.PagedImages{
		Data:    []models.Image{{ID: 2, UserID: 1, Image: "a.jpg", Title: "A"}},
		Total:   2,
		Page:    1,
		Limit:   20,
		HasMore: true,
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/images", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
	assert.Contains(t, w.Body.String(), `"hasMore":true`)
}

func TestGetUserImages_QueryParamsForwarded(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 1)

	svc.On("GetUserImages", uint(1), 3, 5).Return(&models.PagedImages{Page: 3, Limit: 5}, nil)

	w := doJSON(r, http.MethodGet, "/api/images?page=3&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUpdateImage_ForbiddenMapsTo403(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 2)

	title := "hijack"
	svc.On("UpdateImage", uint(5), uint(2), models.UpdateImageRequest{Title: &title}).
		Return(nil, services.ErrNotOwner)

	w := doJSON(r, http.MethodPut, "/api/images/5", gin.H{"title": "hijack"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateImage_NotFoundMapsTo404(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 1)

	title := "x"
	svc.On("UpdateImage", uint(99), uint(1), models.UpdateImageRequest{Title: &title}).
		Return(nil, services.ErrImageNotFound)

	w := doJSON(r, http.MethodPut, "/api/images/99", gin.H{"title": "x"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteImage_OK(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 1)

	svc.On("DeleteImage", uint(5), uint(1)).Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/images/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")
}

func TestUpdateImageOrder_MissingArrayRejected(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 1)

	w := doJSON(r, http.MethodPut, "/api/images/order/update", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpdateImageOrder", mock.Anything, mock.Anything)
}

func TestUpdateImageOrder_OK(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 4)

	updates := []models.OrderUpdate{{ID: 2, Order: 0}, {ID: 1, Order: 1}}
	svc.On("UpdateImageOrder", uint(4), updates).Return(nil)

	w := doJSON(r, http.MethodPut, "/api/images/order/update", models.UpdateOrderRequest{Images: updates})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUploadURL_StorageNotConfigured(t *testing.T) {
	svc := new(mocks.ImageServiceMock)
	r := setupImages(svc, 1)

	w := doJSON(r, http.MethodPost, "/api/images/upload-url", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
