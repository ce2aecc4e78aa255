package config

import (
	"context"
	"fmt"
	"time"

	"github.com/dcode-github/property_dashboard/utils"
	"github.com/redis/go-redis/v9"
)

func InitRedis(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	utils.Logger.Info("Connected to Redis")
	return client, nil
}
