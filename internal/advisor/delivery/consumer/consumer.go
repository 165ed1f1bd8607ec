package consumer

import (
	"context"
	"sync"
	"time"

	"golang-equity-advisor/internal/advisor/config"
	"golang-equity-advisor/internal/advisor/service"
	"golang-equity-advisor/pkg/common"
	"golang-equity-advisor/pkg/logger"
	"golang-equity-advisor/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// RedisConsumer manages the consumption of analyze tasks from the Redis
// stream.
type RedisConsumer struct {
	cfg             *config.Config
	redisClient     *redis.Client
	analyzerService service.AnalyzerService
	logger          *logger.Logger
	stopChan        chan struct{}
	wg              sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(
	cfg *config.Config,
	redisClient *redis.Client,
	analyzerService service.AnalyzerService,
	log *logger.Logger,
) *RedisConsumer {
	return &RedisConsumer{
		cfg:             cfg,
		redisClient:     redisClient,
		analyzerService: analyzerService,
		logger:          log,
		stopChan:        make(chan struct{}),
	}
}

// Start begins the consumer's task processing loop.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.logger.Info("Redis consumer started")

	for i := 0; i < c.cfg.Analyzer.MaxConcurrency(); i++ {
		c.RegisterStreamHandler(ctx, c.analyzerService.ProcessTask, common.RedisStreamAnalyzeTask, c.cfg.Analyzer.RedisStreamAnalyzeTimeout)
	}

	c.RegisterTickerHandler(ctx, c.analyzerService.ProcessRetries, c.cfg.Analyzer.RedisStreamAnalyzeRetryInterval, c.cfg.Analyzer.RedisStreamAnalyzeMaxIdleDuration, common.RedisStreamAnalyzeTask+"-retry")
}

func (c *RedisConsumer) RegisterStreamHandler(ctx context.Context, fn func(ctx context.Context), streamName string, timeout time.Duration) {
	c.logger.Info("Registering stream handler", logger.Field("stream", streamName))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Redis consumer stopping due to context cancellation")
				return
			case <-c.stopChan:
				c.logger.Info("Redis consumer stopping")
				return
			default:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			}
		}
	})
}

func (c *RedisConsumer) RegisterTickerHandler(ctx context.Context, fn func(ctx context.Context), interval time.Duration, timeout time.Duration, name string) {
	c.logger.Info("Registering ticker handler",
		logger.Field("name", name),
		logger.Field("interval", interval),
		logger.Field("timeout", timeout))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			case <-ctx.Done():
				c.logger.Info("Ticker handler stopping due to context cancellation", logger.Field("name", name))
				return
			case <-c.stopChan:
				c.logger.Info("Ticker handler stopping", logger.Field("name", name))
				return
			}
		}
	})
}

// Stop gracefully shuts down the consumer.
func (c *RedisConsumer) Stop() {
	close(c.stopChan)
	c.wg.Wait()
	c.logger.Info("Redis consumer stopped")
}
