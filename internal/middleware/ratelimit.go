package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/cache"
)

// RateLimit enforces a fixed per-minute window per caller, keyed by user id
// when authenticated and IP otherwise. A nil limiter disables the check, and
// Redis failures fail open.
func RateLimit(limiter *cache.RateLimiter, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}
		key := UserID(c)
		if key == "" {
			key = c.IP()
		}
		ok, err := limiter.Allow(c.Context(), key)
		if err != nil {
			logger.Warnw("rate limit check failed", "key", key, "error", err)
			return c.Next()
		}
		if !ok {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded"})
		}
		return c.Next()
	}
}
