package middleware

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Alianda23/art-exhibit-hub-01/internal/config"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Лимитер — token bucket поверх Redis, состояние разделяется между репликами.
var bucketScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill_tokens = tonumber(ARGV[3])
	local interval_ms = tonumber(ARGV[4])
	local ttl_seconds = tonumber(ARGV[5])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	if interval_ms > 0 and refill_tokens > 0 then
		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + (intervals * refill_tokens))
			last_refill = last_refill + (intervals * interval_ms)
		end
	end

	local allowed = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return allowed
`)

// RateLimit applies a per-principal token bucket to mutation endpoints.
// With rate limiting disabled or no Redis client configured it is a
// pass-through. Redis errors fail open: a broken limiter must not take the
// cancellation flow down with it.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client, log logger.Logger) ginext.HandlerFunc {
	if !cfg.Enabled || rdb == nil {
		return func(c *ginext.Context) { c.Next() }
	}

	return func(c *ginext.Context) {
		key := "ratelimit:" + c.ClientIP()
		if id, ok := PrincipalID(c); ok {
			key = "ratelimit:" + id
		}

		args := []any{
			time.Now().UnixMilli(),
			cfg.Capacity,
			cfg.RefillTokens,
			cfg.RefillInterval.Milliseconds(),
			int64(cfg.TTL / time.Second),
		}

		allowed, err := bucketScript.Run(c.Request.Context(), rdb, []string{key}, args...).Int()
		if err != nil {
			log.Error("rate limiter unavailable",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}

		if allowed == 0 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
