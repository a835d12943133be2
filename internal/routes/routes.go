package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/auth"
	"github.com/Sunnycharan27/loopyncapp/internal/cache"
	"github.com/Sunnycharan27/loopyncapp/internal/handlers"
	"github.com/Sunnycharan27/loopyncapp/internal/middleware"
	"github.com/Sunnycharan27/loopyncapp/internal/ws"
)

// Deps collects everything the route tree needs.
type Deps struct {
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Friends       *handlers.FriendHandler
	Blocks        *handlers.BlockHandler
	DM            *handlers.DMHandler
	Notifications *handlers.NotificationHandler
	Social        *handlers.SocialHandler
	Commerce      *handlers.CommerceHandler
	Wallet        *handlers.WalletHandler
	Search        *handlers.SearchHandler
	Seed          *handlers.SeedHandler
	WS            *ws.Handler

	Tokens  *auth.TokenManager
	Limiter *cache.RateLimiter
	Logger  *zap.SugaredLogger
}

func Register(app *fiber.App, d Deps) {
	app.Use(middleware.Recover(d.Logger))
	app.Use(middleware.RequestLogger(d.Logger))
	app.Use(middleware.Metrics())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// websocket upgrade; token comes in the query string
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(d.WS.Serve))

	api := app.Group("/api")

	api.Post("/auth/signup", d.Auth.Signup)
	api.Post("/auth/login", d.Auth.Login)
	api.Post("/seed", d.Seed.Reset)

	authed := api.Group("", middleware.RequireAuth(d.Tokens), middleware.RateLimit(d.Limiter, d.Logger))

	authed.Get("/auth/me", d.Auth.Me)
	authed.Post("/auth/onboarding", d.Auth.Onboarding)

	authed.Get("/users/:id", d.Users.Get)
	authed.Put("/users/:id", d.Users.Update)

	authed.Post("/friend-requests", d.Friends.SendRequest)
	authed.Get("/friend-requests", d.Friends.ListRequests)
	authed.Post("/friend-requests/:id/accept", d.Friends.Accept)
	authed.Post("/friend-requests/:id/reject", d.Friends.Reject)
	authed.Post("/friend-requests/:id/cancel", d.Friends.Cancel)

	authed.Get("/friends/list", d.Friends.ListFriends)
	authed.Get("/friends/status/:userId", d.Friends.Status)
	authed.Delete("/friends/:friendUserId", d.Friends.Remove)

	authed.Post("/blocks", d.Blocks.Block)
	authed.Get("/blocks", d.Blocks.ListBlocks)
	authed.Delete("/blocks/:userId", d.Blocks.Unblock)
	authed.Post("/mutes", d.Blocks.Mute)
	authed.Get("/mutes", d.Blocks.ListMutes)
	authed.Delete("/mutes/:userId", d.Blocks.Unmute)

	authed.Post("/dm/thread", d.DM.OpenThread)
	authed.Get("/dm/threads", d.DM.ListThreads)
	authed.Get("/dm/threads/:id/messages", d.DM.ListMessages)
	authed.Post("/dm/threads/:id/messages", d.DM.SendMessage)
	authed.Post("/dm/threads/:id/read", d.DM.MarkRead)
	authed.Patch("/dm/messages/:id", d.DM.EditMessage)
	authed.Delete("/dm/messages/:id", d.DM.DeleteMessage)

	authed.Get("/notifications", d.Notifications.List)
	authed.Post("/notifications/:id/read", d.Notifications.MarkRead)

	authed.Post("/posts", d.Social.CreatePost)
	authed.Get("/posts", d.Social.ListPosts)
	authed.Get("/posts/:id", d.Social.GetPost)
	authed.Post("/posts/:id/like", d.Social.LikePost)
	authed.Post("/posts/:id/repost", d.Social.RepostPost)
	authed.Post("/posts/:id/comments", d.Social.CommentPost)
	authed.Get("/posts/:id/comments", d.Social.ListPostComments)

	authed.Post("/reels", d.Social.CreateReel)
	authed.Get("/reels", d.Social.ListReels)
	authed.Post("/reels/:id/like", d.Social.LikeReel)
	authed.Post("/reels/:id/view", d.Social.ViewReel)
	authed.Post("/reels/:id/comments", d.Social.CommentReel)
	authed.Get("/reels/:id/comments", d.Social.ListReelComments)

	authed.Post("/tribes", d.Social.CreateTribe)
	authed.Get("/tribes", d.Social.ListTribes)
	authed.Get("/tribes/:id", d.Social.GetTribe)
	authed.Get("/tribes/:id/posts", d.Social.ListTribePosts)
	authed.Post("/tribes/:id/join", d.Social.JoinTribe)
	authed.Post("/tribes/:id/leave", d.Social.LeaveTribe)

	authed.Get("/venues", d.Commerce.ListVenues)
	authed.Get("/venues/:id", d.Commerce.GetVenue)
	authed.Post("/orders", d.Commerce.PlaceOrder)
	authed.Get("/orders", d.Commerce.ListOrders)
	authed.Get("/events", d.Commerce.ListEvents)
	authed.Get("/events/:id", d.Commerce.GetEvent)
	authed.Post("/events/:id/tickets", d.Commerce.BuyTicket)
	authed.Get("/tickets", d.Commerce.ListTickets)
	authed.Get("/creators", d.Commerce.ListCreators)
	authed.Get("/creators/:id", d.Commerce.GetCreator)

	authed.Get("/wallet", d.Wallet.Get)
	authed.Post("/wallet/topup", d.Wallet.TopUp)

	authed.Get("/search", d.Search.Search)
}
