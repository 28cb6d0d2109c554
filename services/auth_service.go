package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adhilX/Stock-Image-Platform/core"
	"github.com/adhilX/Stock-Image-Platform/models"
	"github.com/adhilX/Stock-Image-Platform/repositories"
	"github.com/adhilX/Stock-Image-Platform/utils"
	"github.com/adhilX/Stock-Image-Platform/utils/redislog"
	"github.com/adhilX/Stock-Image-Platform/utils/tokenstore"

	"github.com/redis/go-redis/v9"
)

// AuthService covers the credential/token use-cases: account creation,
// login with an access+refresh token pair, refresh-token rotation, logout
// and password change.
type AuthService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	// Login returns the user plus an access token and a refresh token.
	Login(req models.LoginRequest) (*models.User, string, string, error)
	// Refresh rotates the refresh token and issues a new access token.
	Refresh(refreshToken string) (string, string, error)
	Logout(refreshToken string) error
	ChangePassword(userID uint, currentPassword, newPassword string) error
	// GetByID is a cache-aware read used by the refresh and password paths.
	GetByID(id uint) (*models.User, error)
}

type authService struct {
	repo       repositories.UserRepository
	tokens     tokenstore.Store
	rdb        *redis.Client // user cache; may be nil when cache disabled
	log        *redislog.Logger
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthService constructs the service with all dependencies injected.
func NewAuthService(
	repo repositories.UserRepository,
	tokens tokenstore.Store,
	rdb *redis.Client,
	rlog *redislog.Logger,
	jwtSecret string,
	accessTTL, refreshTTL time.Duration,
) AuthService {
	return &authService{
		repo:       repo,
		tokens:     tokens,
		rdb:        rdb,
		log:        rlog,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// userCacheTTL is how long a cached user stays in Redis before expiring.
const userCacheTTL = 10 * time.Minute

func (s *authService) cacheKeyUser(id uint) string {
	return fmt.Sprintf("user:%d", id) // e.g. "user:42"
}

// Register creates a new account: email uniqueness check, bcrypt hash,
// normalized display name, then a cache warm so the first read is a hit.
func (s *authService) Register(req models.RegisterRequest) (*models.User, error) {
	if _, err := s.repo.FindByEmail(req.Email); err == nil { // a row with that email exists
		s.log.Warn("register email exists", map[string]string{"email": req.Email})
		return nil, ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("register hash error", map[string]string{"email": req.Email, "err": err.Error()})
		return nil, err
	}

	u := &models.User{
		Name:     core.NormalizeName(req.Name),
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hash,
	}
	if err := s.repo.Create(u); err != nil {
		s.log.Error("register db create error", map[string]string{"email": req.Email, "err": err.Error()})
		return nil, err
	}

	s.cacheSet(u)
	s.log.Info("register success", map[string]string{"user_id": fmt.Sprint(u.ID), "email": u.Email})
	return u, nil
}

// Login validates credentials and issues the token pair. Lookup failures
// and wrong passwords both collapse to ErrInvalidCredentials so responses
// don't leak which part was wrong.
func (s *authService) Login(req models.LoginRequest) (*models.User, string, string, error) {
	u, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		s.log.Warn("login user not found", map[string]string{"email": req.Email})
		return nil, "", "", ErrInvalidCredentials
	}
	if !utils.CheckPassword(u.Password, req.Password) {
		s.log.Warn("login wrong password", map[string]string{"email": req.Email})
		return nil, "", "", ErrInvalidCredentials
	}

	access, err := utils.IssueAccessToken(s.jwtSecret, u.ID, u.Email, s.accessTTL)
	if err != nil {
		s.log.Error("login token sign error", map[string]string{"email": u.Email, "err": err.Error()})
		return nil, "", "", err
	}
	refresh, err := s.tokens.Mint(context.Background(), u.ID, s.refreshTTL)
	if err != nil {
		s.log.Error("login refresh mint error", map[string]string{"email": u.Email, "err": err.Error()})
		return nil, "", "", err
	}

	s.log.Info("login success", map[string]string{"user_id": fmt.Sprint(u.ID), "email": u.Email})
	return u, access, refresh, nil
}

// Refresh rotates the presented refresh token and issues a fresh access
// token for the same user. The old refresh token is dead after this call.
func (s *authService) Refresh(refreshToken string) (string, string, error) {
	userID, newRefresh, err := s.tokens.Rotate(context.Background(), refreshToken, s.refreshTTL)
	if err != nil {
		s.log.Warn("refresh token rejected", map[string]string{"err": err.Error()})
		return "", "", err
	}

	u, err := s.GetByID(userID)
	if err != nil {
		s.log.Error("refresh user lookup error", map[string]string{"user_id": fmt.Sprint(userID), "err": err.Error()})
		return "", "", tokenstore.ErrInvalidRefreshToken
	}

	access, err := utils.IssueAccessToken(s.jwtSecret, u.ID, u.Email, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	s.log.Info("token refreshed", map[string]string{"user_id": fmt.Sprint(u.ID)})
	return access, newRefresh, nil
}

// Logout revokes the refresh token. Best effort: an unknown token is fine,
// and the endpoint succeeds either way.
func (s *authService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.tokens.Revoke(context.Background(), refreshToken); err != nil {
		s.log.Warn("logout revoke error", map[string]string{"err": err.Error()})
	}
	return nil
}

// ChangePassword verifies the current password before storing the new hash
// and invalidating the cached user.
func (s *authService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if !utils.CheckPassword(u.Password, currentPassword) {
		s.log.Warn("change password wrong current", map[string]string{"user_id": fmt.Sprint(userID)})
		return ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.Password = hash
	if err := s.repo.Update(u); err != nil {
		s.log.Error("change password db error", map[string]string{"user_id": fmt.Sprint(userID), "err": err.Error()})
		return err
	}

	s.cacheDel(userID)
	s.cacheSet(u)
	s.log.Info("password changed", map[string]string{"user_id": fmt.Sprint(userID)})
	return nil
}

// GetByID returns a user, preferring the Redis cache and falling back to
// the database (re-warming the cache on a miss).
func (s *authService) GetByID(id uint) (*models.User, error) {
	if s.rdb != nil {
		ctx := context.Background()
		key := s.cacheKeyUser(id)
		val, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var u models.User
			if json.Unmarshal([]byte(val), &u) == nil {
				return &u, nil
			}
			s.log.Warn("cache unmarshal failed", map[string]string{"key": key})
		} else if err != redis.Nil {
			s.log.Error("cache GET error", map[string]string{"key": key, "err": err.Error()})
		}
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	s.cacheSet(u)
	return u, nil
}

// cacheSet writes the user's JSON into Redis with the cache TTL. Best
// effort; cache failures never fail the request.
func (s *authService) cacheSet(u *models.User) {
	if s.rdb == nil {
		return
	}
	if b, _ := json.Marshal(u); len(b) > 0 {
		_ = s.rdb.Set(context.Background(), s.cacheKeyUser(u.ID), b, userCacheTTL).Err()
	}
}

func (s *authService) cacheDel(id uint) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(context.Background(), s.cacheKeyUser(id)).Err()
}
