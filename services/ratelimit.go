package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles credential-guessing with a redis counter per
// username. A nil limiter allows everything, so the server runs without
// redis in development and tests.
type LoginLimiter struct {
	Client *redis.Client
	Limit  int64
	Window time.Duration
}

// NewLoginLimiter connects to redis and verifies the connection.
func NewLoginLimiter(redisURL string, limit int64, window time.Duration) (*LoginLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &LoginLimiter{Client: client, Limit: limit, Window: window}, nil
}

// Allow records an attempt for the key and reports whether it is still
// within the window's limit. Redis failures do not lock users out.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.Client == nil {
		return true
	}

	redisKey := "login_attempts:" + key
	count, err := l.Client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		l.Client.Expire(ctx, redisKey, l.Window)
	}
	return count <= l.Limit
}

// Reset clears the attempt counter after a successful authentication.
func (l *LoginLimiter) Reset(ctx context.Context, key string) {
	if l == nil || l.Client == nil {
		return
	}
	l.Client.Del(ctx, "login_attempts:"+key)
}
