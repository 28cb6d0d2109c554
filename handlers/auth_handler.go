package handlers // Controller layer translates HTTP <-> service calls.

import (
	"net/http"
	"time"

	"github.com/adhilX/Stock-Image-Platform/global"
	"github.com/adhilX/Stock-Image-Platform/middlewares"
	"github.com/adhilX/Stock-Image-Platform/models"
	"github.com/adhilX/Stock-Image-Platform/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler bundles dependencies needed by the auth endpoints.
type AuthHandler struct {
	svc          services.AuthService
	refreshTTL   time.Duration // also the refresh cookie's max age
	cookieSecure bool          // Secure flag on the refresh cookie (true behind TLS)
}

// NewAuthHandler constructs the handler with its dependencies.
func NewAuthHandler(svc services.AuthService, refreshTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{svc: svc, refreshTTL: refreshTTL, cookieSecure: cookieSecure}
}

// setRefreshCookie (re)issues the HTTP-only refresh cookie.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(global.RefreshCookieName, token, int(h.refreshTTL.Seconds()), "/", "", h.cookieSecure, true)
}

// clearRefreshCookie expires the refresh cookie immediately.
func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(global.RefreshCookieName, "", -1, "/", "", h.cookieSecure, true)
}

// Register handles POST /api/register (public).
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	u, err := h.svc.Register(req)
	if err != nil {
		serviceError(c, err)
		return
	}
	// Password is omitted from the JSON by the model's json:"-" tag.
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": u})
}

// Login handles POST /api/login (public). On success the access token goes
// in the body and the refresh token in an HTTP-only cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	u, access, refresh, err := h.svc.Login(req)
	if err != nil {
		serviceError(c, err)
		return
	}
	h.setRefreshCookie(c, refresh)
	c.JSON(http.StatusOK, gin.H{
		"message":     "User logged in successfully",
		"accessToken": access,
		"user":        u,
	})
}

// RefreshToken handles POST /api/refresh-token. The refresh token comes
// from the cookie, gets rotated, and the replacement cookie is set in the
// same response.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refresh, err := c.Cookie(global.RefreshCookieName)
	if err != nil || refresh == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Refresh token not found"})
		return
	}
	access, newRefresh, err := h.svc.Refresh(refresh)
	if err != nil {
		h.clearRefreshCookie(c)
		serviceError(c, err)
		return
	}
	h.setRefreshCookie(c, newRefresh)
	c.JSON(http.StatusOK, gin.H{"message": "Token refreshed successfully", "accessToken": access})
}

// Logout handles POST /api/logout. Always succeeds, with or without a
// valid refresh cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	refresh, _ := c.Cookie(global.RefreshCookieName)
	_ = h.svc.Logout(refresh)
	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ChangePassword handles POST /api/change-password (protected).
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.svc.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
