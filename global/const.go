package global

const (
	AppVersion = "1.0.0" // project version shown in logs

	// Gin context keys set by the auth middleware.
	// Using string constants reduces risk of typos and collisions.
	CtxUserIDKey    = "uid"
	CtxUserEmailKey = "uemail"

	// AccessTokenHeader carries the short-lived access token on every
	// authenticated request. Clients send it as a plain header, not through
	// the Authorization: Bearer scheme.
	AccessTokenHeader = "x-access-token"

	// RefreshCookieName is the HTTP-only cookie holding the refresh token.
	RefreshCookieName = "refreshToken"
)
