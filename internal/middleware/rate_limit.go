package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/nexusgo/foodtracker/backend/internal/metrics"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// NewLimiter returns a Redis fixed-window limiter when a client is available
// and an in-process token bucket otherwise.
func NewLimiter(redisClient *redis.Client, cfg RateLimitConfig) Limiter {
	if redisClient != nil {
		return NewRedisLimiter(redisClient, cfg)
	}
	return NewLocalLimiter(cfg)
}

// PostCreationLimit is the limit applied to new community posts.
func PostCreationLimit(perHour int) RateLimitConfig {
	return RateLimitConfig{
		Window:    time.Hour,
		Limit:     perHour,
		KeyPrefix: "rate_limit:post_creation",
	}
}

// RedisLimiter counts requests per key in fixed windows shared by all
// instances.
type RedisLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
}

func NewRedisLimiter(redisClient *redis.Client, cfg RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{redis: redisClient, config: cfg}
}

func (rl *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	windowStart := time.Now().Truncate(rl.config.Window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, err
	}

	count := int(incr.Val())
	return Decision{
		Allowed:   count <= rl.config.Limit,
		Limit:     rl.config.Limit,
		Remaining: max(rl.config.Limit-count, 0),
		Reset:     windowStart.Add(rl.config.Window),
	}, nil
}

type keyLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LocalLimiter keeps one token bucket per key in memory. Limit tokens refill
// evenly over Window.
type LocalLimiter struct {
	config RateLimitConfig

	mu       sync.Mutex
	limiters map[string]*keyLimiter
}

func NewLocalLimiter(cfg RateLimitConfig) *LocalLimiter {
	return &LocalLimiter{
		config:   cfg,
		limiters: make(map[string]*keyLimiter),
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.evictIdle(now)
	kl, ok := l.limiters[key]
	if !ok {
		every := l.config.Window / time.Duration(max(l.config.Limit, 1))
		kl = &keyLimiter{limiter: rate.NewLimiter(rate.Every(every), l.config.Limit)}
		l.limiters[key] = kl
	}
	kl.lastAccess = now

	allowed := kl.limiter.AllowN(now, 1)
	tokens := kl.limiter.TokensAt(now)
	// Reset is when the next token arrives, not when the bucket is full.
	missing := max(1-tokens, 0)
	refill := time.Duration(missing / float64(kl.limiter.Limit()) * float64(time.Second))

	return Decision{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: max(int(tokens), 0),
		Reset:     now.Add(refill),
	}, nil
}

// evictIdle drops buckets that have been idle for a full window; such a
// bucket is full again and equivalent to a fresh one.
func (l *LocalLimiter) evictIdle(now time.Time) {
	for key, kl := range l.limiters {
		if now.Sub(kl.lastAccess) > l.config.Window {
			delete(l.limiters, key)
		}
	}
}

// Size returns the number of tracked keys.
func (l *LocalLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// RateLimit returns a middleware that limits requests per authenticated
// account. It must run after AuthMiddleware. Limiter failures are logged and
// the request is let through.
func RateLimit(limiter Limiter, rec metrics.Recorder, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := AccountID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
			return
		}

		d, err := limiter.Allow(c.Request.Context(), strconv.FormatUint(uint64(accountID), 10))
		if err != nil {
			log.Warn().Err(err).Uint("account_id", accountID).Msg("rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(d.Reset.Unix(), 10))

		if !d.Allowed {
			retryAfter := max(int(time.Until(d.Reset).Seconds()), 1)
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			if rec != nil {
				rec.RecordRateLimited(c.FullPath())
			}
			log.Warn().Uint("account_id", accountID).Str("route", c.FullPath()).Msg("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
