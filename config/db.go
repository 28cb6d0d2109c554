package config

import (
	"log"

	"github.com/adhilX/Stock-Image-Platform/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// InitDB opens a database connection for the configured driver and
// auto-migrates the schema. Repositories and services never see the
// driver choice; they only receive the *gorm.DB.
func InitDB(cfg *Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	// Warn keeps output readable; Info logs every statement.
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			log.Fatal("[db] mysql selected but mysql_dsn empty")
		}
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("[db] postgres selected but postgres_dsn empty")
		}
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN), gormCfg)
	case "sqlite":
		// SQLite only needs a file path; the file is created if missing.
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			log.Fatal("[db] sqlserver selected but sqlserver_dsn empty")
		}
		db, err = gorm.Open(sqlserver.Open(cfg.SQLServerDSN), gormCfg)
	default:
		log.Fatalf("[db] unknown DBDriver: %s", cfg.DBDriver)
	}

	if err != nil {
		log.Fatalf("[db] connection error: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Image{}); err != nil {
		log.Fatalf("[db] automigrate error: %v", err)
	}

	return db
}
