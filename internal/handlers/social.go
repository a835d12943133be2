package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sunnycharan27/loopyncapp/internal/middleware"
	"github.com/Sunnycharan27/loopyncapp/internal/service"
)

type SocialHandler struct {
	svc *service.SocialService
}

func NewSocialHandler(svc *service.SocialService) *SocialHandler {
	return &SocialHandler{svc: svc}
}

type createPostBody struct {
	Text     string `json:"text"`
	Media    string `json:"media"`
	Audience string `json:"audience"`
}

func (h *SocialHandler) CreatePost(c *fiber.Ctx) error {
	var body createPostBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, err := h.svc.CreatePost(c.Context(), middleware.UserID(c), body.Text, body.Media, body.Audience)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *SocialHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.svc.ListPosts(c.Context(), queryInt(c, "limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (h *SocialHandler) GetPost(c *fiber.Ctx) error {
	p, err := h.svc.GetPost(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

func (h *SocialHandler) LikePost(c *fiber.Ctx) error {
	action, p, err := h.svc.ToggleLikePost(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"action": action, "likes": p.Stats.Likes})
}

func (h *SocialHandler) RepostPost(c *fiber.Ctx) error {
	action, p, err := h.svc.ToggleRepost(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"action": action, "reposts": p.Stats.Reposts})
}

type commentBody struct {
	Text string `json:"text"`
}

func (h *SocialHandler) CommentPost(c *fiber.Ctx) error {
	var body commentBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	cm, err := h.svc.CreatePostComment(c.Context(), c.Params("id"), middleware.UserID(c), body.Text)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cm)
}

func (h *SocialHandler) ListPostComments(c *fiber.Ctx) error {
	comments, err := h.svc.ListPostComments(c.Context(), c.Params("id"), queryInt(c, "limit", 100))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments})
}

type createReelBody struct {
	VideoURL string `json:"videoUrl"`
	Thumb    string `json:"thumb"`
	Caption  string `json:"caption"`
}

func (h *SocialHandler) CreateReel(c *fiber.Ctx) error {
	var body createReelBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	r, err := h.svc.CreateReel(c.Context(), middleware.UserID(c), body.VideoURL, body.Thumb, body.Caption)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *SocialHandler) ListReels(c *fiber.Ctx) error {
	reels, err := h.svc.ListReels(c.Context(), queryInt(c, "limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"reels": reels})
}

func (h *SocialHandler) LikeReel(c *fiber.Ctx) error {
	action, r, err := h.svc.ToggleLikeReel(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"action": action, "likes": r.Stats.Likes})
}

func (h *SocialHandler) ViewReel(c *fiber.Ctx) error {
	if err := h.svc.ViewReel(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"viewed": true})
}

func (h *SocialHandler) CommentReel(c *fiber.Ctx) error {
	var body commentBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	cm, err := h.svc.CreateReelComment(c.Context(), c.Params("id"), middleware.UserID(c), body.Text)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cm)
}

func (h *SocialHandler) ListReelComments(c *fiber.Ctx) error {
	comments, err := h.svc.ListReelComments(c.Context(), c.Params("id"), queryInt(c, "limit", 100))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments})
}

type createTribeBody struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
}

func (h *SocialHandler) CreateTribe(c *fiber.Ctx) error {
	var body createTribeBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	t, err := h.svc.CreateTribe(c.Context(), middleware.UserID(c), body.Name, body.Description, body.Type, body.Tags)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *SocialHandler) ListTribes(c *fiber.Ctx) error {
	tribes, err := h.svc.ListTribes(c.Context(), queryInt(c, "limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"tribes": tribes})
}

func (h *SocialHandler) GetTribe(c *fiber.Ctx) error {
	t, err := h.svc.GetTribe(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(t)
}

func (h *SocialHandler) JoinTribe(c *fiber.Ctx) error {
	t, err := h.svc.JoinTribe(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(t)
}

func (h *SocialHandler) ListTribePosts(c *fiber.Ctx) error {
	posts, err := h.svc.ListTribePosts(c.Context(), c.Params("id"), queryInt(c, "limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (h *SocialHandler) LeaveTribe(c *fiber.Ctx) error {
	t, err := h.svc.LeaveTribe(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(t)
}
