package routes // Router setup layer.

import (
	"time"

	"github.com/adhilX/Stock-Image-Platform/handlers"
	"github.com/adhilX/Stock-Image-Platform/middlewares"
	"github.com/adhilX/Stock-Image-Platform/services"
	"github.com/adhilX/Stock-Image-Platform/storage"

	"github.com/gin-gonic/gin"
)

// Options carries the non-service knobs the router needs.
type Options struct {
	JWTSecret    string
	RefreshTTL   time.Duration
	CookieSecure bool
	CORSOrigin   string // empty disables the CORS middleware
}

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, auth services.AuthService, images services.ImageService, store storage.ObjectStore, opts Options) {
	r.Use(middlewares.RequestLogger(), middlewares.Recovery())
	if opts.CORSOrigin != "" {
		r.Use(middlewares.CORS(opts.CORSOrigin))
	}

	ah := handlers.NewAuthHandler(auth, opts.RefreshTTL, opts.CookieSecure)
	ih := handlers.NewImageHandler(images, store)

	api := r.Group("/api")

	// Public auth endpoints (no access token required; refresh-token and
	// logout authenticate through the refresh cookie instead).
	api.POST("/register", ah.Register)
	api.POST("/login", ah.Login)
	api.POST("/refresh-token", ah.RefreshToken)
	api.POST("/logout", ah.Logout)
	api.POST("/change-password", middlewares.Auth(opts.JWTSecret), ah.ChangePassword)

	// Image endpoints all require a valid access token.
	img := api.Group("/images")
	img.Use(middlewares.Auth(opts.JWTSecret))
	img.POST("", ih.SaveImages)
	img.GET("", ih.GetUserImages)
	img.POST("/upload-url", ih.UploadURL)
	// The static order/update route must be registered before the :id
	// wildcard so Gin resolves it first.
	img.PUT("/order/update", ih.UpdateImageOrder)
	img.PUT("/:id", ih.UpdateImage)
	img.DELETE("/:id", ih.DeleteImage)
}
