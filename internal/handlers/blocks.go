package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/middleware"
	"github.com/Sunnycharan27/loopyncapp/internal/service"
)

type BlockHandler struct {
	svc *service.BlockService
}

func NewBlockHandler(svc *service.BlockService) *BlockHandler {
	return &BlockHandler{svc: svc}
}

type targetUserBody struct {
	UserID string `json:"userId"`
}

func (h *BlockHandler) Block(c *fiber.Ctx) error {
	var body targetUserBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.svc.Block(c.Context(), middleware.UserID(c), body.UserID); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"blocked": true})
}

func (h *BlockHandler) Unblock(c *fiber.Ctx) error {
	if err := h.svc.Unblock(c.Context(), middleware.UserID(c), c.Params("userId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"blocked": false})
}

func (h *BlockHandler) ListBlocks(c *fiber.Ctx) error {
	blocks, err := h.svc.ListBlocks(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"blocks": blocks})
}

func (h *BlockHandler) Mute(c *fiber.Ctx) error {
	var body targetUserBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.svc.Mute(c.Context(), middleware.UserID(c), body.UserID); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"muted": true})
}

func (h *BlockHandler) Unmute(c *fiber.Ctx) error {
	if err := h.svc.Unmute(c.Context(), middleware.UserID(c), c.Params("userId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"muted": false})
}

func (h *BlockHandler) ListMutes(c *fiber.Ctx) error {
	mutes, err := h.svc.ListMutes(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"mutes": mutes})
}
