// Package tokenstore persists opaque refresh tokens in Redis.
//
// Tokens are random strings handed to the client in an HTTP-only cookie;
// Redis keeps sha256(token) -> user ID with the refresh TTL. Rotation
// deletes the presented token and mints a replacement, so a stolen old
// token stops working the moment the real client refreshes.
package tokenstore

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrInvalidRefreshToken indicates the token is unknown, expired or revoked.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// Store is what the auth service depends on; the Redis implementation is
// swapped for a testify mock in unit tests.
type Store interface {
	Mint(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	Rotate(ctx context.Context, token string, ttl time.Duration) (uint, string, error)
	Revoke(ctx context.Context, token string) error
}

// RedisStore implements Store over a shared Redis client.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an already-connected Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Mint issues a fresh token for userID and stores its hash with the TTL.
func (s *RedisStore) Mint(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	key := tokenKey(token)
	if err := s.rdb.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Rotate validates the presented token, revokes it and mints a replacement
// for the same user. The delete+set pair runs in one pipeline so the old
// token cannot be replayed after the new one exists.
func (s *RedisStore) Rotate(ctx context.Context, token string, ttl time.Duration) (uint, string, error) {
	key := tokenKey(token)
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, "", ErrInvalidRefreshToken
	}
	if err != nil {
		return 0, "", err
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, "", ErrInvalidRefreshToken
	}

	newToken, err := generateToken()
	if err != nil {
		return 0, "", err
	}
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.Set(ctx, tokenKey(newToken), val, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, "", err
	}
	return uint(userID), newToken, nil
}

// Revoke drops the token. Revoking an unknown token is not an error;
// logout must always succeed.
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, tokenKey(token)).Err()
}

// generateToken returns 32 random bytes hex-encoded.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// tokenKey hashes the token so Redis never holds the raw credential.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "refresh:" + hex.EncodeToString(sum[:])
}
