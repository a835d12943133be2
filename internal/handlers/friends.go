package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/middleware"
	"github.com/Sunnycharan27/loopyncapp/internal/service"
)

type FriendHandler struct {
	svc *service.FriendService
}

func NewFriendHandler(svc *service.FriendService) *FriendHandler {
	return &FriendHandler{svc: svc}
}

type sendRequestBody struct {
	ToUserID string `json:"toUserId"`
}

func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	var body sendRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	fr, err := h.svc.SendFriendRequest(c.Context(), middleware.UserID(c), body.ToUserID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fr)
}

func (h *FriendHandler) Accept(c *fiber.Ctx) error {
	fr, err := h.svc.AcceptFriendRequest(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fr)
}

func (h *FriendHandler) Reject(c *fiber.Ctx) error {
	fr, err := h.svc.RejectFriendRequest(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fr)
}

func (h *FriendHandler) Cancel(c *fiber.Ctx) error {
	fr, err := h.svc.CancelFriendRequest(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fr)
}

func (h *FriendHandler) ListRequests(c *fiber.Ctx) error {
	reqs, err := h.svc.ListRequests(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"requests": reqs})
}

func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	friends, err := h.svc.ListFriends(c.Context(),
		middleware.UserID(c),
		c.Query("q"),
		queryInt(c, "cursor", 0),
		queryInt(c, "limit", 50),
	)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"friends": friends})
}

func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	if err := h.svc.RemoveFriend(c.Context(), middleware.UserID(c), c.Params("friendUserId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"removed": true})
}

// Status reports whether the caller and the target are friends.
func (h *FriendHandler) Status(c *fiber.Ctx) error {
	friends, err := h.svc.AreFriends(c.Context(), middleware.UserID(c), c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"friends": friends})
}
