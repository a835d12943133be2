package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/metrics"
)

// Metrics counts requests by route pattern so path params don't explode the
// label space.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		route := c.Route().Path
		metrics.HTTPRequests.WithLabelValues(
			c.Method(),
			route,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}
