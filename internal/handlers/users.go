package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/middleware"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	p, err := h.svc.Profile(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

// Update is self-service; the path id must match the caller.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var upd models.ProfileUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	u, err := h.svc.UpdateProfile(c.Context(), middleware.UserID(c), c.Params("id"), upd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(u)
}
