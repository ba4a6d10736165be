package app

import (
	"context"

	"anonboard/internal/app/board"
	"anonboard/internal/app/health"
	"anonboard/internal/app/reply"
	"anonboard/internal/app/thread"
	"anonboard/internal/config"
	"anonboard/internal/db"
	"anonboard/internal/db/seeder"
	"anonboard/internal/providers/redis"
	"anonboard/internal/router"
	"anonboard/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	if cfg.Env == "dev" {
		seed := seeder.NewSeeder(dbConn, logger)
		if err := seed.Seed(); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()

	// Moderation events land in the log; there is no other workflow behind
	// the reported flag.
	sugar := logger.Sugar()
	for _, event := range []string{"thread_reported", "reply_reported"} {
		eventBus.Subscribe(event, func(e utils.Event) {
			sugar.Infow("Moderation flag raised", "event", e.Event, "data", e.Data)
		})
	}
	go eventBus.Run(context.Background())

	threadRepo := thread.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)

	threadService := thread.NewService(threadRepo, redisProvider, eventBus, logger, cfg.RedisTTL)
	replyService := reply.NewService(threadService, eventBus, logger)
	boardService := board.NewService(boardRepo)

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	threadHandler := thread.NewHandler(threadService)
	replyHandler := reply.NewHandler(replyService)
	boardHandler := board.NewHandler(boardService)

	r := router.NewRouter(logger)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterThreadRoutes(threadHandler)
	r.RegisterReplyRoutes(replyHandler)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
