package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	// RedisClient is nil when no REDIS_URL is configured.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis(cfg *AppConfig) error {
	log := zap.L().Named("config.redis")
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not set, using in-memory favorites and no rate limiting")
		return nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	res, err := client.Ping(Ctx).Result()
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis: %w", err)
	}
	RedisClient = client
	log.Info("connected to redis", zap.String("ping", res))
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
