package cache

import (
	"context"
	"fmt"

	"marathon-submissions/core/config"
	"marathon-submissions/core/constants"
	"marathon-submissions/core/logger"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

func Init(cfg config.RedisConfig) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:Init:Ping", err)
		return err
	}
	logger.Info("Redis cache initialized", "host", cfg.Host, "port", cfg.Port)
	return nil
}

func Close() {
	if client != nil {
		_ = client.Close()
	}
}

// IsTokenBlacklisted checks the revocation set maintained by the identity
// provider in the shared redis.
func IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetCurrentEvent caches the serialized current event for the resolver
// middleware. Event settings writes call InvalidateCurrentEvent.
func SetCurrentEvent(ctx context.Context, payload []byte) error {
	return client.Set(ctx, constants.RedisKeyCurrentEvent, payload, constants.CurrentEventCacheTTL).Err()
}

func GetCurrentEvent(ctx context.Context) ([]byte, error) {
	payload, err := client.Get(ctx, constants.RedisKeyCurrentEvent).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return payload, err
}

func InvalidateCurrentEvent(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Del(ctx, constants.RedisKeyCurrentEvent).Err(); err != nil {
		logger.Error("Cache:InvalidateCurrentEvent", err)
	}
}

// Ready reports whether Init has been called; services fall back to the
// database when the cache is not wired (tests).
func Ready() bool {
	return client != nil
}
