package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// JwtKey signs and verifies the session tokens issued by the auth handlers.
var JwtKey []byte

// ENV holds every environment-driven setting the portal reads at startup.
type ENV struct {
	DatabaseURL   string
	RedisAddr     string
	ListenAddr    string
	JWTSecret     string
	AdminLogin    string
	AdminPassword string
}

// Load reads .env (when present) and the process environment into an ENV.
// Missing optional values stay empty; the callers decide what is fatal.
func Load() ENV {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info("No .env file found, relying on process environment")
	}

	env := ENV{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		ListenAddr:    os.Getenv("LISTEN_ADDR"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminLogin:    os.Getenv("ADMIN_LOGIN"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	if env.ListenAddr == "" {
		env.ListenAddr = ":8080"
	}
	// JWT_SECRET is only required for serving; migrate and seed never sign
	// tokens, so the server entrypoint enforces its presence.
	if env.JWTSecret != "" {
		JwtKey = []byte(env.JWTSecret)
	}
	return env
}
