package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis tracks which Telegram update IDs were already processed.
// Telegram redelivers updates that were not acknowledged, so the webhook
// checks here before running the reply pipeline again.
type IRedis interface {
	MarkUpdateProcessed(ctx context.Context, updateID int64, expiration time.Duration) error
	IsUpdateProcessed(ctx context.Context, updateID int64) (bool, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func updateKey(updateID int64) string {
	return fmt.Sprintf("telegram:update:%d", updateID)
}

func (r *redisClient) MarkUpdateProcessed(ctx context.Context, updateID int64, expiration time.Duration) error {
	return r.client.Set(ctx, updateKey(updateID), "1", expiration).Err()
}

func (r *redisClient) IsUpdateProcessed(ctx context.Context, updateID int64) (bool, error) {
	_, err := r.client.Get(ctx, updateKey(updateID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
