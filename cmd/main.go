package main

import (
	"context"
	"log"
	"time"

	"github.com/sheav-web/-math-bot-telegram-two/internal/bot"
	"github.com/sheav-web/-math-bot-telegram-two/internal/client"
	"github.com/sheav-web/-math-bot-telegram-two/internal/config"
	"github.com/sheav-web/-math-bot-telegram-two/internal/repository"
	"github.com/sheav-web/-math-bot-telegram-two/internal/server"
	"github.com/sheav-web/-math-bot-telegram-two/internal/service"
	"github.com/sheav-web/-math-bot-telegram-two/internal/storage/cache"
	"github.com/sheav-web/-math-bot-telegram-two/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	var repo service.ProfileRI
	switch cfg.Store.Kind {
	case "postgres":
		database, err := db.InitDB(cfg.DB)
		if err != nil {
			logger.Fatal("failed init db", zap.Error(err))
		}

		repos := repository.NewRepository(database)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repos.Init(ctx); err != nil {
			cancel()
			logger.Fatal("failed init schema", zap.Error(err))
		}
		cancel()

		repo = repos
	default:
		repo = repository.NewFileStore(cfg.Store.Path, logger)
	}

	sessions := cache.NewSessions(cfg.App.SessionTTL)
	stop := make(chan struct{})
	defer close(stop)
	go sessions.Sweep(cfg.App.SweepInterval, stop)

	services := service.InitServices(repo, sessions, logger)

	if cfg.KeepAlive.Enabled {
		router := server.New(cfg.Env)
		go func() {
			if err := router.Run(cfg.KeepAlive.Addr); err != nil {
				logger.Error("keep-alive server stopped", zap.Error(err))
			}
		}()

		if cfg.KeepAlive.TargetURL != "" {
			pinger := client.NewKeepAwake(cfg.KeepAlive.TargetURL, cfg.KeepAlive.Interval, logger)
			go pinger.Run(context.Background())
		}
	}

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
