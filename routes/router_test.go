package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adhilX/Stock-Image-Platform/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testOptions() Options {
	return Options{JWTSecret: "secret", RefreshTTL: time.Hour}
}

func TestSetup_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	Setup(r, new(mocks.AuthServiceMock), new(mocks.ImageServiceMock), nil, testOptions())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code) // route exists; body missing
}

func TestSetup_ImagesRequireAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	Setup(r, new(mocks.AuthServiceMock), new(mocks.ImageServiceMock), nil, testOptions())

	for _, rt := range []struct{ method, path string }{
		{http.MethodPost, "/api/images"},
		{http.MethodGet, "/api/images"},
		{http.MethodPut, "/api/images/1"},
		{http.MethodDelete, "/api/images/1"},
		{http.MethodPut, "/api/images/order/update"},
		{http.MethodPost, "/api/images/upload-url"},
		{http.MethodPost, "/api/change-password"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(rt.method, rt.path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", rt.method, rt.path)
	}
}
