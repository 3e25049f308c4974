package middleware

import (
	"context"
	"time"

	"github.com/near/pagoda-console-sub002/config"
	"github.com/near/pagoda-console-sub002/internal/api"

	"github.com/gofiber/fiber/v2"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateKeyPrefix = "console:ratelimit:"

// RateLimiter bounds request rates per caller.
type RateLimiter struct {
	client  *redis.Client
	log     *zap.SugaredLogger
	limit   int
	window  time.Duration
	timeout time.Duration
}

// NewRateLimiter connects to redis and returns a limiter. Failures to reach
// redis are returned to the caller; a nil limiter means rate limiting is off.
func NewRateLimiter(cfg config.RedisConfig, log *zap.SugaredLogger) (*RateLimiter, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	window := cfg.RateWindow
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		client:  client,
		log:     log.Named("ratelimit"),
		limit:   cfg.RateLimit,
		window:  window,
		timeout: 250 * time.Millisecond,
	}, nil
}

// Close releases the redis connection.
func (rl *RateLimiter) Close() {
	if rl != nil && rl.client != nil {
		_ = rl.client.Close()
	}
}

// allow counts the request against the caller's window. Redis errors fail
// open so a limiter outage never blocks the API.
func (rl *RateLimiter) allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), rl.timeout)
	defer cancel()

	redisKey := rateKeyPrefix + key
	counter, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.log.Errorw("rate limiter incr failed", "error", err)
		return true
	}
	if counter == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			rl.log.Errorw("rate limiter expire failed", "error", err)
		}
	}
	return int(counter) <= rl.limit
}

// RateLimit rejects callers over their per-window budget with 429. Keys on
// the authenticated user id, falling back to client IP before auth.
func RateLimit(rl *RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := UserID(c)
		if key == "" {
			key = c.IP()
		}
		if !rl.allow(key) {
			return c.Status(fiber.StatusTooManyRequests).JSON(api.ErrorResponse{
				Error: api.ErrorBody{Code: api.RATELIMITED, Message: "rate limit exceeded"},
			})
		}
		return c.Next()
	}
}
