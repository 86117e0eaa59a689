package http

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "github.com/lawfirm/site-api/pkg/util/errorutil"
)

// RateDecision is the outcome of one limiter check.
type RateDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter decides whether key may make another request.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateDecision, error)
	Limit() int
}

type redisRateLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

// NewRedisRateLimiter shares the per-minute budget across every instance.
func NewRedisRateLimiter(client *redis.Client, perMinute int) RateLimiter {
	return &redisRateLimiter{
		limiter: redis_rate.NewLimiter(client),
		limit:   redis_rate.PerMinute(perMinute),
	}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string) (RateDecision, error) {
	res, err := l.limiter.Allow(ctx, "ratelimit:"+key, l.limit)
	if err != nil {
		return RateDecision{}, err
	}
	return RateDecision{Allowed: res.Allowed > 0, Remaining: res.Remaining, RetryAfter: res.RetryAfter}, nil
}

func (l *redisRateLimiter) Limit() int { return l.limit.Rate }

type memoryEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryRateLimiter keeps one token bucket per key in this process.
type memoryRateLimiter struct {
	mu        sync.Mutex
	perMinute int
	limit     rate.Limit
	entries   map[string]*memoryEntry
	now       func() time.Time
}

// NewMemoryRateLimiter limits within this process only. A non-positive
// perMinute never limits. now may be nil.
func NewMemoryRateLimiter(perMinute int, now func() time.Time) RateLimiter {
	if now == nil {
		now = time.Now
	}
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &memoryRateLimiter{
		perMinute: perMinute,
		limit:     limit,
		entries:   make(map[string]*memoryEntry),
		now:       now,
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, key string) (RateDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[key]
	if !ok {
		entry = &memoryEntry{limiter: rate.NewLimiter(l.limit, l.perMinute)}
		l.entries[key] = entry
	}
	entry.lastSeen = now

	// forget clients idle for ten minutes
	for k, other := range l.entries {
		if now.Sub(other.lastSeen) > 10*time.Minute {
			delete(l.entries, k)
		}
	}

	if entry.limiter.AllowN(now, 1) {
		return RateDecision{Allowed: true, Remaining: int(entry.limiter.TokensAt(now))}, nil
	}
	reservation := entry.limiter.ReserveN(now, 1)
	wait := reservation.DelayFrom(now)
	reservation.CancelAt(now)
	return RateDecision{Allowed: false, RetryAfter: wait}, nil
}

func (l *memoryRateLimiter) Limit() int { return l.perMinute }

// RateLimit rejects clients that exceed the limiter's budget with 429.
// Limiter faults are logged and the request is let through.
func RateLimit(limiter RateLimiter, scope string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision, err := limiter.Allow(c.UserContext(), scope+":"+c.IP())
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.String("scope", scope), zap.Error(err))
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			retry := int(decision.RetryAfter.Round(time.Second) / time.Second)
			if retry < 1 {
				retry = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retry))
			return apperrors.NewTooManyRequests("Too many requests")
		}
		return c.Next()
	}
}
