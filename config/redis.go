package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis initializes the optional Redis client. When REDIS_ADDR is not
// set, or the server is unreachable, RDB stays nil and callers fall back to
// their in-process paths.
func ConnectRedis(addr string) {
	if addr == "" {
		slog.Warn("REDIS_ADDR is not set, falling back to in-process caching")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Redis connection failed, falling back to in-process caching", "error", err)
		RDB = nil
		return
	}

	slog.Info("Connected to Redis")
}
