package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares fixed-window counters between service replicas.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := r.now().Truncate(r.window).Unix()
	redisKey := fmt.Sprintf("%s:%s:%d", r.prefix, key, windowStart)

	count, err := r.client.Do(ctx, r.client.B().Incr().Key(redisKey).Build()).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		expire := r.client.B().Pexpire().Key(redisKey).Milliseconds(r.window.Milliseconds()).Build()
		if err := r.client.Do(ctx, expire).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.limit), nil
}
