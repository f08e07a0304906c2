package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/urfave/cli/v3"

	"github.com/pennyhelp/esep-self-employment-hub/config"
	"github.com/pennyhelp/esep-self-employment-hub/internal/cache"
	"github.com/pennyhelp/esep-self-employment-hub/internal/handlers"
	"github.com/pennyhelp/esep-self-employment-hub/internal/realtime"
	"github.com/pennyhelp/esep-self-employment-hub/internal/routes"
	"github.com/pennyhelp/esep-self-employment-hub/models"
)

func main() {
	env := config.Load()

	cmd := &cli.Command{
		Name:  "esep-hub",
		Usage: "Self-employment registration portal backend",
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(env)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP server",
				Action: func(ctx context.Context, c *cli.Command) error {
					return serve(env)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migration and install change-notify triggers",
				Action: func(ctx context.Context, c *cli.Command) error {
					config.ConnectDB(env.DatabaseURL)
					if err := models.AutoMigrate(config.DB); err != nil {
						return err
					}
					slog.Info("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed permissions, roles, default categories and the admin user",
				Action: func(ctx context.Context, c *cli.Command) error {
					config.ConnectDB(env.DatabaseURL)
					if err := models.Seed(config.DB, env.AdminLogin, env.AdminPassword); err != nil {
						return err
					}
					slog.Info("Seed complete")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func serve(env config.ENV) error {
	if env.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is not set")
	}
	config.ConnectDB(env.DatabaseURL)
	config.ConnectRedis(env.RedisAddr)

	var store cache.Store
	if config.RDB != nil {
		store = cache.NewRedisStore(config.RDB)
	} else {
		store = cache.NewMemoryStore()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub()
	go hub.Run(ctx)
	go realtime.Listen(ctx, env.DatabaseURL, hub, store)

	r := gin.Default()
	routes.SetupRoutes(r, routes.Handlers{
		Auth:          handlers.NewAuthHandler(config.DB),
		Categories:    handlers.NewCategoryHandler(config.DB, store, hub),
		Panchayaths:   handlers.NewPanchayathHandler(config.DB, store, hub),
		Registrations: handlers.NewRegistrationHandler(config.DB, hub),
		Realtime:      handlers.NewRealtimeHandler(hub),
	})

	server := &http.Server{
		Addr:    env.ListenAddr,
		Handler: cors.AllowAll().Handler(r),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Server starting", "addr", env.ListenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("Server stopped")
	return nil
}
