package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SetupRedisConnection returns nil when redis is disabled.
func SetupRedisConnection(r RedisConfig) (*redis.Client, error) {
	if !r.Enabled {
		return nil, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       r.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, err
	}

	return redisClient, nil
}
