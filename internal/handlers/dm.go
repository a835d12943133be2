package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/middleware"
	"github.com/Sunnycharan27/loopyncapp/internal/service"
)

type DMHandler struct {
	svc *service.DMService
}

func NewDMHandler(svc *service.DMService) *DMHandler {
	return &DMHandler{svc: svc}
}

type openThreadBody struct {
	PeerID string `json:"peerId"`
}

func (h *DMHandler) OpenThread(c *fiber.Ctx) error {
	var body openThreadBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	t, err := h.svc.GetOrCreateThread(c.Context(), middleware.UserID(c), body.PeerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(t)
}

func (h *DMHandler) ListThreads(c *fiber.Ctx) error {
	views, err := h.svc.ListThreads(c.Context(),
		middleware.UserID(c),
		queryInt(c, "cursor", 0),
		queryInt(c, "limit", 50),
	)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"threads": views})
}

func (h *DMHandler) ListMessages(c *fiber.Ctx) error {
	msgs, err := h.svc.ListMessages(c.Context(),
		c.Params("id"),
		middleware.UserID(c),
		queryTime(c, "before"),
		queryInt(c, "limit", 50),
	)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"messages": msgs})
}

type sendMessageBody struct {
	Text     string `json:"text"`
	MediaURL string `json:"mediaUrl"`
	MimeType string `json:"mimeType"`
}

func (h *DMHandler) SendMessage(c *fiber.Ctx) error {
	var body sendMessageBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	msg, err := h.svc.SendMessage(c.Context(),
		c.Params("id"), middleware.UserID(c),
		body.Text, body.MediaURL, body.MimeType,
	)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

type markReadBody struct {
	LastReadMessageID string `json:"lastReadMessageId"`
}

func (h *DMHandler) MarkRead(c *fiber.Ctx) error {
	var body markReadBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.svc.MarkRead(c.Context(), c.Params("id"), middleware.UserID(c), body.LastReadMessageID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"read": true})
}

type editMessageBody struct {
	Text string `json:"text"`
}

func (h *DMHandler) EditMessage(c *fiber.Ctx) error {
	var body editMessageBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	msg, err := h.svc.EditMessage(c.Context(), c.Params("id"), middleware.UserID(c), body.Text)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(msg)
}

func (h *DMHandler) DeleteMessage(c *fiber.Ctx) error {
	if err := h.svc.DeleteMessage(c.Context(), c.Params("id"), middleware.UserID(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
