package service

import (
	"context"
	"encoding/json"

	"golang-equity-advisor/internal/advisor/config"
	"golang-equity-advisor/internal/advisor/dto"
	"golang-equity-advisor/internal/advisor/repository"
	"golang-equity-advisor/pkg/common"
	"golang-equity-advisor/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// SchedulerService enqueues watchlist tickers to the analyze stream on a
// cron schedule.
type SchedulerService interface {
	Start(ctx context.Context) error
	Stop()
	EnqueueWatchlist(ctx context.Context)
}

type schedulerService struct {
	cfg         *config.Config
	logger      *logger.Logger
	redisClient *redis.Client
	stocksRepo  repository.StocksRepository
	cron        *cron.Cron
}

// NewSchedulerService creates a new SchedulerService.
func NewSchedulerService(cfg *config.Config, log *logger.Logger, redisClient *redis.Client, stocksRepo repository.StocksRepository) SchedulerService {
	return &schedulerService{
		cfg:         cfg,
		logger:      log,
		redisClient: redisClient,
		stocksRepo:  stocksRepo,
		cron:        cron.New(),
	}
}

// Start registers the watchlist cron and starts the scheduler.
func (s *schedulerService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Scheduler.WatchlistCron, func() {
		s.EnqueueWatchlist(ctx)
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Watchlist scheduler started", logger.StringField("cron", s.cfg.Scheduler.WatchlistCron))
	return nil
}

// Stop stops the cron scheduler and waits for in-flight runs.
func (s *schedulerService) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Watchlist scheduler stopped")
}

// EnqueueWatchlist publishes one analyze task per active watchlist entry.
func (s *schedulerService) EnqueueWatchlist(ctx context.Context) {
	stocks, err := s.stocksRepo.GetActiveStocks(ctx)
	if err != nil {
		s.logger.Error("Failed to load watchlist", logger.ErrorField(err))
		return
	}

	for _, stock := range stocks {
		streamData := dto.StreamDataAnalyzeTask{
			Ticker:     stock.Code,
			Sector:     stock.Sector,
			NotifyUser: true,
		}
		streamDataJSON, err := json.Marshal(streamData)
		if err != nil {
			s.logger.Error("Failed to marshal analyze task payload", logger.ErrorField(err), logger.StringField("ticker", stock.Code))
			continue
		}

		if err := s.redisClient.XAdd(ctx, &redis.XAddArgs{
			Stream: common.RedisStreamAnalyzeTask,
			Values: map[string]interface{}{"payload": streamDataJSON},
			MaxLen: s.cfg.Redis.StreamMaxLen, // Limit the stream size
		}).Err(); err != nil {
			s.logger.Error("Failed to enqueue analyze task", logger.ErrorField(err), logger.StringField("ticker", stock.Code))
			continue
		}

		s.logger.Info("Analyze task enqueued", logger.StringField("ticker", stock.Code))
	}
}
