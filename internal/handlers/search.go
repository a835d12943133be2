package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	res, err := h.svc.Search(c.Context(), c.Query("q"), c.Query("filter"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(res)
}
