package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/service"
)

type SeedHandler struct {
	svc *service.SeedService
}

func NewSeedHandler(svc *service.SeedService) *SeedHandler {
	return &SeedHandler{svc: svc}
}

// Reset wipes and reloads the demo dataset. Dev convenience, not for prod.
func (h *SeedHandler) Reset(c *fiber.Ctx) error {
	counts, err := h.svc.Reset(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"seeded": counts})
}
