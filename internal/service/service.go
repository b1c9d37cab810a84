package service

import (
	"context"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
	"github.com/sheav-web/-math-bot-telegram-two/internal/storage/cache"
	"go.uber.org/zap"
)

type ProfileRI interface {
	AddAttempt(ctx context.Context, userID int64, attempt models.AttemptRecord) error
	Attempts(ctx context.Context, userID int64) ([]models.AttemptRecord, error)
}

type Service struct {
	*DrillS
	*StatsS
}

func InitServices(repo ProfileRI, sessions *cache.Sessions, log *zap.Logger) *Service {
	return &Service{
		DrillS: NewDrillService(repo, sessions, log),
		StatsS: NewStatsService(repo, log),
	}
}
