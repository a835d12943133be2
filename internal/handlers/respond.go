package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
)

// fail maps domain errors onto the HTTP taxonomy; anything unrecognized is a
// plain 500 so internals never leak.
func fail(c *fiber.Ctx, err error) error {
	var ae *apperrors.AppError
	if errors.As(err, &ae) {
		return c.Status(ae.Code.HTTPStatus()).JSON(fiber.Map{
			"error": ae.Message,
			"code":  ae.Code,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

func queryInt(c *fiber.Ctx, name string, def int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// queryTime parses an RFC3339 cursor; zero time when absent or malformed.
func queryTime(c *fiber.Ctx, name string) time.Time {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
