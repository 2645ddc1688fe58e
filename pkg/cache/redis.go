package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shiftsight/shiftsight-api/pkg/config"
)

// NewRedis connects the client backing the analyzed-solution store. Redis is
// the only store this gateway has, so the connection is verified up front
// and a failed ping is fatal to the caller. Cached views run to hundreds of
// kilobytes per solution, hence the generous read and write timeouts.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping solution store: %w", err)
	}

	return client, nil
}
