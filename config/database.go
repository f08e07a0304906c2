package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the Postgres connection used by the whole application.
// The DSN comes from DATABASE_URL; without it the portal cannot run.
func ConnectDB(dsn string) {
	if dsn == "" {
		slog.Error("DATABASE_URL environment variable is not set")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Connected to database")
}
