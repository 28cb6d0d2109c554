package main

import (
	"log"
	"time"

	"github.com/adhilX/Stock-Image-Platform/config"
	"github.com/adhilX/Stock-Image-Platform/repositories"
	"github.com/adhilX/Stock-Image-Platform/routes"
	"github.com/adhilX/Stock-Image-Platform/services"
	"github.com/adhilX/Stock-Image-Platform/storage"
	"github.com/adhilX/Stock-Image-Platform/utils/redislog"
	"github.com/adhilX/Stock-Image-Platform/utils/tokenstore"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1) Load config from file and/or env.
	cfg := config.Load()
	log.Printf("[boot] %s starting in %s on :%s", cfg.AppName, cfg.Env, cfg.HTTPPort)

	// 2) Infrastructure: DB (migrated) and Redis (Ping verified).
	db := config.InitDB(cfg)
	rdb := config.InitRedis(cfg)

	// 3) Redis-backed app logger (list key: logs:app).
	rlog := redislog.New(rdb, "logs:app", 1000, 7*24*time.Hour)
	rlog.Info("app boot", map[string]string{
		"env":   cfg.Env,
		"port":  cfg.HTTPPort,
		"redis": cfg.RedisAddr,
	})

	// 4) Repositories and services (dependency injection).
	userRepo := repositories.NewUserRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	tokens := tokenstore.NewRedisStore(rdb)
	authSvc := services.NewAuthService(userRepo, tokens, rdb, rlog,
		cfg.JWTSecret, config.AccessTokenTTL, config.RefreshTokenTTL)
	imageSvc := services.NewImageService(imageRepo, rlog)

	// 5) Object storage is optional; without it the upload-url endpoint
	// reports 503 and clients must provide locators themselves.
	var store storage.ObjectStore
	if cfg.StorageEndpoint != "" {
		s, err := storage.NewMinioStore(cfg.StorageEndpoint, cfg.StorageAccessKey,
			cfg.StorageSecretKey, cfg.StorageBucket, cfg.StorageUseSSL, config.PresignTTL)
		if err != nil {
			log.Fatalf("[storage] init failed: %v", err)
		}
		store = s
		log.Printf("[storage] connected: endpoint=%s bucket=%s", cfg.StorageEndpoint, cfg.StorageBucket)
	}

	// 6) Gin engine and routes.
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	routes.Setup(r, authSvc, imageSvc, store, routes.Options{
		JWTSecret:    cfg.JWTSecret,
		RefreshTTL:   config.RefreshTokenTTL,
		CookieSecure: cfg.CookieSecure,
		CORSOrigin:   cfg.CORSOrigin,
	})

	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}
