package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Sunnycharan27/loopyncapp/internal/auth"
	"github.com/Sunnycharan27/loopyncapp/internal/cache"
	"github.com/Sunnycharan27/loopyncapp/internal/config"
	"github.com/Sunnycharan27/loopyncapp/internal/events"
	"github.com/Sunnycharan27/loopyncapp/internal/handlers"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
	"github.com/Sunnycharan27/loopyncapp/internal/routes"
	"github.com/Sunnycharan27/loopyncapp/internal/service"
	"github.com/Sunnycharan27/loopyncapp/internal/ws"
	"github.com/Sunnycharan27/loopyncapp/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Server.Development)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	mongo, err := repository.NewMongo(cfg)
	if err != nil {
		log.Fatalw("mongo connect failed", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongo.Disconnect(ctx)
	}()

	userRepo := repository.NewUserRepository(mongo)
	friendRepo := repository.NewFriendRepository(mongo)
	blockRepo := repository.NewBlockRepository(mongo)
	dmRepo := repository.NewDMRepository(mongo)
	notifRepo := repository.NewNotificationRepository(mongo)
	socialRepo := repository.NewSocialRepository(mongo)
	commerceRepo := repository.NewCommerceRepository(mongo)
	walletRepo := repository.NewWalletRepository(mongo)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.AccessTTL)
	hub := ws.NewHub()

	var (
		presence *cache.PresenceStore
		limiter  *cache.RateLimiter
	)
	if cfg.Redis.Enabled {
		rdb := cache.NewRedis(cfg)
		presence = cache.NewPresenceStore(rdb, cfg.Redis.Prefix)
		if cfg.RateLimit.Enabled {
			limiter = cache.NewRateLimiter(rdb, cfg.Redis.Prefix, cfg.RateLimit.PerMinute, time.Minute)
		}
	}

	var pub events.Publisher
	var consumer *events.KafkaConsumer
	if cfg.Kafka.Enabled {
		instanceID := uuid.New().String()
		producer := events.NewKafkaProducer(cfg, instanceID)
		defer func() { _ = producer.Close() }()
		pub = producer
		consumer = events.NewKafkaConsumer(cfg, instanceID, log)
		defer func() { _ = consumer.Close() }()
	}

	dispatcher := events.NewDispatcher(notifRepo, hub, pub, log)

	walletSvc := service.NewWalletService(userRepo, walletRepo, log)
	authSvc := service.NewAuthService(userRepo, tokens, log)
	var presenceReader service.PresenceReader
	if presence != nil {
		presenceReader = presence
	}
	userSvc := service.NewUserService(userRepo, presenceReader, log)
	friendSvc := service.NewFriendService(userRepo, friendRepo, blockRepo, dmRepo, walletSvc, dispatcher, log)
	blockSvc := service.NewBlockService(userRepo, friendRepo, blockRepo, log)
	dmSvc := service.NewDMService(userRepo, friendRepo, blockRepo, dmRepo, dispatcher, log)
	notifSvc := service.NewNotificationService(notifRepo)
	socialSvc := service.NewSocialService(userRepo, socialRepo, dispatcher, log)
	commerceSvc := service.NewCommerceService(commerceRepo, dispatcher, log)
	searchSvc := service.NewSearchService(userRepo, socialRepo, commerceRepo)
	seedSvc := service.NewSeedService(mongo, log)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	routes.Register(app, routes.Deps{
		Auth:          handlers.NewAuthHandler(authSvc),
		Users:         handlers.NewUserHandler(userSvc),
		Friends:       handlers.NewFriendHandler(friendSvc),
		Blocks:        handlers.NewBlockHandler(blockSvc),
		DM:            handlers.NewDMHandler(dmSvc),
		Notifications: handlers.NewNotificationHandler(notifSvc),
		Social:        handlers.NewSocialHandler(socialSvc),
		Commerce:      handlers.NewCommerceHandler(commerceSvc),
		Wallet:        handlers.NewWalletHandler(walletSvc),
		Search:        handlers.NewSearchHandler(searchSvc),
		Seed:          handlers.NewSeedHandler(seedSvc),
		WS:            ws.NewHandler(hub, tokens, dmRepo, presence, log),
		Tokens:        tokens,
		Limiter:       limiter,
		Logger:        log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if consumer != nil {
		go consumer.Run(ctx, hub)
	}

	go func() {
		log.Infow("server starting", "port", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatalw("server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down")
	hub.Close()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Warnw("shutdown incomplete", "error", err)
	}
}
