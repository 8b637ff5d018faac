package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisSettings struct {
	Addr     string
	Password string
	DB       int
}

// ConnectRedis opens a client and pings it once.
func ConnectRedis(ctx context.Context, s RedisSettings) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     s.Addr,
		Password: s.Password,
		DB:       s.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", s.Addr, err)
	}
	return rdb, nil
}
