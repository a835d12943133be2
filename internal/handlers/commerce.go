package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/middleware"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/service"
)

type CommerceHandler struct {
	svc *service.CommerceService
}

func NewCommerceHandler(svc *service.CommerceService) *CommerceHandler {
	return &CommerceHandler{svc: svc}
}

func (h *CommerceHandler) ListVenues(c *fiber.Ctx) error {
	venues, err := h.svc.ListVenues(c.Context(), queryInt(c, "limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"venues": venues})
}

func (h *CommerceHandler) GetVenue(c *fiber.Ctx) error {
	v, err := h.svc.GetVenue(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(v)
}

type placeOrderBody struct {
	VenueID string              `json:"venueId"`
	Items   []models.OrderItem  `json:"items"`
	Split   []models.OrderSplit `json:"split"`
}

func (h *CommerceHandler) PlaceOrder(c *fiber.Ctx) error {
	var body placeOrderBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	o, err := h.svc.PlaceOrder(c.Context(), middleware.UserID(c), body.VenueID, body.Items, body.Split)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *CommerceHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.svc.ListOrders(c.Context(), middleware.UserID(c), queryInt(c, "limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (h *CommerceHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.svc.ListEvents(c.Context(), queryInt(c, "limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"events": events})
}

func (h *CommerceHandler) GetEvent(c *fiber.Ctx) error {
	e, err := h.svc.GetEvent(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(e)
}

type buyTicketBody struct {
	Tier string `json:"tier"`
}

func (h *CommerceHandler) BuyTicket(c *fiber.Ctx) error {
	var body buyTicketBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	t, err := h.svc.BuyTicket(c.Context(), c.Params("id"), middleware.UserID(c), body.Tier)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *CommerceHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.svc.ListTickets(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

func (h *CommerceHandler) ListCreators(c *fiber.Ctx) error {
	creators, err := h.svc.ListCreators(c.Context(), queryInt(c, "limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"creators": creators})
}

func (h *CommerceHandler) GetCreator(c *fiber.Ctx) error {
	cr, err := h.svc.GetCreator(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cr)
}
