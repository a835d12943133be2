package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/middleware"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type signupRequest struct {
	Handle   string `json:"handle"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	res, err := h.svc.Signup(c.Context(), req.Handle, req.Name, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

type loginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	res, err := h.svc.Login(c.Context(), req.Handle, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(res)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.svc.Me(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(u)
}

func (h *AuthHandler) Onboarding(c *fiber.Ctx) error {
	var ob models.Onboarding
	if err := c.BodyParser(&ob); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	u, err := h.svc.CompleteOnboarding(c.Context(), middleware.UserID(c), ob)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(u)
}
