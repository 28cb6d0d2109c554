package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config mirrors the shape of config.yaml. Every key can be overridden
// through the environment with an APP_ prefix, e.g. APP_HTTP_PORT=9090.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"env"`       // dev|staging|prod
	HTTPPort string `mapstructure:"http_port"` // "8080"

	JWTSecret      string `mapstructure:"jwt_secret"`
	AccessExpires  string `mapstructure:"access_expires"`  // parsed by time.ParseDuration, e.g. "15m"
	RefreshExpires string `mapstructure:"refresh_expires"` // e.g. "720h" (30 days)

	// Database settings. DBDriver selects one of the GORM drivers at
	// runtime; only the matching DSN/path is consulted.
	DBDriver     string `mapstructure:"db_driver"` // mysql|postgres|sqlite|sqlserver
	MySQLDSN     string `mapstructure:"mysql_dsn"`
	PostgresDSN  string `mapstructure:"postgres_dsn"`
	SQLitePath   string `mapstructure:"sqlite_path"`
	SQLServerDSN string `mapstructure:"sqlserver_dsn"`

	RedisAddr string `mapstructure:"redis_addr"` // "localhost:6379"
	RedisDB   int    `mapstructure:"redis_db"`
	RedisPass string `mapstructure:"redis_password"`

	CORSOrigin   string `mapstructure:"cors_origin"`   // browser origin allowed to send credentials
	CookieSecure bool   `mapstructure:"cookie_secure"` // set true behind HTTPS

	// Object storage for presigned uploads. Leaving the endpoint empty
	// disables the upload-url endpoint.
	StorageEndpoint  string `mapstructure:"storage_endpoint"` // "localhost:9000"
	StorageAccessKey string `mapstructure:"storage_access_key"`
	StorageSecretKey string `mapstructure:"storage_secret_key"`
	StorageBucket    string `mapstructure:"storage_bucket"`
	StorageUseSSL    bool   `mapstructure:"storage_use_ssl"`
	PresignExpires   string `mapstructure:"presign_expires"` // e.g. "10m"
}

// Parsed durations, filled during Load.
var (
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	PresignTTL      time.Duration
)

// Load reads config.yaml (if present), applies APP_* env overrides, and
// parses the duration fields. Invalid durations abort startup.
func Load() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults (safe for local)
	v.SetDefault("app_name", "StockImagePlatform")
	v.SetDefault("env", "dev")
	v.SetDefault("http_port", "8080")
	v.SetDefault("access_expires", "15m")
	v.SetDefault("refresh_expires", "720h")
	v.SetDefault("db_driver", "mysql")
	v.SetDefault("sqlite_path", "app.db")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cookie_secure", false)
	v.SetDefault("storage_bucket", "stock-images")
	v.SetDefault("presign_expires", "10m")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[config] no config file found, using defaults/env: %v", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("[config] unmarshal error: %v", err)
	}

	var err error
	if AccessTokenTTL, err = time.ParseDuration(c.AccessExpires); err != nil {
		log.Fatalf("[config] invalid access_expires value: %v", err)
	}
	if RefreshTokenTTL, err = time.ParseDuration(c.RefreshExpires); err != nil {
		log.Fatalf("[config] invalid refresh_expires value: %v", err)
	}
	if PresignTTL, err = time.ParseDuration(c.PresignExpires); err != nil {
		log.Fatalf("[config] invalid presign_expires value: %v", err)
	}

	return &c
}
