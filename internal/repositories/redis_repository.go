package repository

import (
	"context"
	"fmt"
	"time"

	"shopledger/internal/config"

	"github.com/redis/go-redis/v9"
)

type RedisRepo struct {
	client *redis.Client
	config *config.Config
	now    func() time.Time
}

func NewRedisRepo(cfg *config.Config) (*RedisRepo, error) {

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host + ":" + cfg.RedisConnect.Port,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test the connection to make sure Redis is reachable
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisRepo{client: client, config: cfg, now: time.Now}, nil
}

// NewRedisRepoWithClient wires an existing client; used by tests.
func NewRedisRepoWithClient(client *redis.Client, cfg *config.Config, now func() time.Time) *RedisRepo {
	return &RedisRepo{client: client, config: cfg, now: now}
}

// CheckWriteRateLimit records a mutating request for the given client
// key inside a sliding window and reports whether it is still allowed.
// Returns allowed, seconds to wait before retrying, error.
func (r *RedisRepo) CheckWriteRateLimit(ctx context.Context, clientKey string) (bool, int, error) {

	key := fmt.Sprintf("write_attempts:%s", clientKey)

	now := r.now().Unix()

	// Only requests inside the window are counted.
	windowStart := now - int64(r.config.RateConfig.WindowSize.Seconds())

	pipe := r.client.Pipeline()

	// drop entries that fell out of the window
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))

	// record the current request
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})

	// count requests inside the window
	count := pipe.ZCard(ctx, key)

	// expire the key with the window
	pipe.Expire(ctx, key, r.config.RateConfig.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("rate limit check failed: %w", err)
	}

	if count.Val() > r.config.RateConfig.MaxAttempts {
		return false, int(r.config.RateConfig.WindowSize.Seconds()), nil
	}

	return true, 0, nil
}
