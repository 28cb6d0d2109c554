package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAccessToken covers any parse/signature/expiry failure so callers
// don't need to distinguish jwt library error values.
var ErrInvalidAccessToken = errors.New("invalid or expired token")

// IssueAccessToken signs a short-lived HS256 token carrying the user's
// identity. The claims match what the auth middleware expects back:
// sub (user ID), eml (email), iat and exp.
func IssueAccessToken(secret string, userID uint, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"eml": email,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates a compact token string and extracts the user ID
// and email claims. Any failure collapses to ErrInvalidAccessToken.
func ParseAccessToken(secret, raw string) (uint, string, error) {
	t, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return 0, "", ErrInvalidAccessToken
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidAccessToken
	}

	var id uint
	switch v := claims["sub"].(type) {
	case float64: // JSON numbers decode to float64
		id = uint(v)
	case string: // tolerate string-typed IDs
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, "", ErrInvalidAccessToken
		}
		id = uint(n)
	default:
		return 0, "", ErrInvalidAccessToken
	}

	email, _ := claims["eml"].(string)
	return id, email, nil
}
