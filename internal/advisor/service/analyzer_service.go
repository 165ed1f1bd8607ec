package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-equity-advisor/internal/advisor/config"
	"golang-equity-advisor/internal/advisor/dto"
	"golang-equity-advisor/internal/advisor/repository"
	"golang-equity-advisor/internal/advisor/scoring"
	"golang-equity-advisor/internal/entity"
	"golang-equity-advisor/pkg/common"
	"golang-equity-advisor/pkg/logger"
	"golang-equity-advisor/pkg/telegram"
	"golang-equity-advisor/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// ErrMalformedTicker marks a ticker rejected before the pipeline starts.
var ErrMalformedTicker = errors.New("malformed ticker")

// AnalyzerService runs the full advisory pipeline for one ticker and
// consumes analyze tasks from the redis stream.
type AnalyzerService interface {
	ProcessTask(ctx context.Context)
	ProcessRetries(ctx context.Context)
	Analyze(ctx context.Context, ticker, sector string) (*entity.StockDecision, error)
}

type analyzerService struct {
	cfg          *config.Config
	log          *logger.Logger
	redisClient  *redis.Client
	aiRepo       repository.AIRepository
	yahooFinance repository.YahooFinanceRepository
	alphaVantage repository.FundamentalsRepository
	newsRepo     repository.NewsRepository
	decisionRepo repository.DecisionRepository
	benchmarks   *scoring.Benchmarks
	scorer       *scoring.Scorer
	telegramBot  telegram.Notifier
}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService(
	cfg *config.Config,
	log *logger.Logger,
	redisClient *redis.Client,
	aiRepo repository.AIRepository,
	yahooFinance repository.YahooFinanceRepository,
	alphaVantage repository.FundamentalsRepository,
	newsRepo repository.NewsRepository,
	decisionRepo repository.DecisionRepository,
	telegramBot telegram.Notifier,
) AnalyzerService {
	benchmarks := scoring.NewBenchmarks()
	return &analyzerService{
		cfg:          cfg,
		log:          log,
		redisClient:  redisClient,
		aiRepo:       aiRepo,
		yahooFinance: yahooFinance,
		alphaVantage: alphaVantage,
		newsRepo:     newsRepo,
		decisionRepo: decisionRepo,
		benchmarks:   benchmarks,
		scorer:       scoring.NewScorer(benchmarks),
		telegramBot:  telegramBot,
	}
}

// Analyze runs the full pipeline: fundamentals, technicals, quantitative
// verdict, narrative assessment, reconciliation, persistence. Provider and
// model failures degrade the decision instead of aborting it; only a
// malformed ticker or a storage failure returns an error.
func (s *analyzerService) Analyze(ctx context.Context, ticker, sector string) (*entity.StockDecision, error) {
	normalized, err := utils.NormalizeTicker(ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedTicker, err.Error())
	}

	fundamentals, sector := s.fetchFundamentals(ctx, normalized, sector)

	pe := scoring.MetricFromPtr(fundamentals.PE)
	roe := scoring.MetricFromPtr(fundamentals.ROE)
	debtEquity := scoring.MetricFromPtr(fundamentals.DebtToEquity)
	peFetched, roeFetched, debtFetched := pe.Valid, roe.Valid, debtEquity.Valid

	// Sector-average estimates keep the scorer fed, but an estimated value
	// still counts as missing for the confidence downgrade.
	estimated := false
	if fallback, ok := s.benchmarks.Fallback(sector); ok {
		if !pe.Valid {
			pe = scoring.MetricOf(fallback.PE)
			estimated = true
		}
		if !roe.Valid {
			roe = scoring.MetricOf(fallback.ROE)
			estimated = true
		}
		if !debtEquity.Valid {
			debtEquity = scoring.MetricOf(fallback.DE)
			estimated = true
		}
	}

	breakdown := s.scorer.Score(pe, roe, debtEquity, sector)
	if !peFetched {
		breakdown.MissingPE = true
	}
	if !roeFetched {
		breakdown.MissingROE = true
	}
	if !debtFetched {
		breakdown.MissingDebtEquity = true
	}
	if estimated {
		breakdown.Warnings = append(breakdown.Warnings, "One or more fundamentals estimated from sector averages")
	}

	signal, rsiMissing := s.evaluateTechnicals(ctx, normalized)

	quant := scoring.CombineQuant(breakdown, signal, rsiMissing)

	newsItems, newsMissing := s.fetchNews(ctx, normalized)

	assessment := s.assessQualitative(ctx, normalized, sector, fundamentals, newsItems)
	qual := scoring.QualVerdict{
		Sentiment:           scoring.Sentiment(assessment.Sentiment),
		Confidence:          scoring.Confidence(assessment.Confidence),
		MissingDataDetected: assessment.MissingDataDetected,
	}

	anyMissing := quant.MissingDataDetected || qual.MissingDataDetected || newsMissing
	decision := scoring.Reconcile(quant, qual, anyMissing, breakdown.DebtTier)

	record, err := s.buildRecord(normalized, sector, breakdown, signal, rsiMissing, quant, qual, decision, assessment, newsMissing)
	if err != nil {
		return nil, err
	}

	if err := s.decisionRepo.Create(ctx, record); err != nil {
		s.log.Error("Failed to persist decision", logger.ErrorField(err), logger.StringField("ticker", normalized))
		return nil, fmt.Errorf("failed to persist decision: %w", err)
	}

	s.notify(record)
	return record, nil
}

// fetchFundamentals tries Yahoo Finance first, then Alpha Vantage. A total
// provider failure yields an empty snapshot; the caller fills sector
// estimates and flags the metrics missing.
func (s *analyzerService) fetchFundamentals(ctx context.Context, ticker, sector string) (*dto.StockFundamentals, string) {
	ctxTimeout, cancel := context.WithTimeout(ctx, s.providerTimeout())
	defer cancel()

	fundamentals, err := s.yahooFinance.GetFundamentals(ctxTimeout, ticker)
	if err != nil {
		s.log.Warn("Yahoo Finance fundamentals unavailable", logger.ErrorField(err), logger.StringField("ticker", ticker))

		ctxTimeout, cancel := context.WithTimeout(ctx, s.providerTimeout())
		defer cancel()
		fundamentals, err = s.alphaVantage.GetFundamentals(ctxTimeout, ticker)
		if err != nil {
			s.log.Warn("Alpha Vantage fundamentals unavailable", logger.ErrorField(err), logger.StringField("ticker", ticker))
			fundamentals = &dto.StockFundamentals{Ticker: ticker, Source: "none"}
		}
	}

	if sector == "" {
		sector = fundamentals.Sector
	}
	if sector == "" {
		sector = "Unknown"
	}
	fundamentals.Sector = sector
	return fundamentals, sector
}

// evaluateTechnicals fetches the close series and computes RSI. Too little
// history or a provider failure is a missing-data condition.
func (s *analyzerService) evaluateTechnicals(ctx context.Context, ticker string) (scoring.TechnicalSignal, bool) {
	ctxTimeout, cancel := context.WithTimeout(ctx, s.providerTimeout())
	defer cancel()

	closes, err := s.yahooFinance.GetClosingPrices(ctxTimeout, dto.GetStockDataParam{
		Ticker:   ticker,
		Range:    "3mo",
		Interval: "1d",
	})
	if err != nil {
		s.log.Warn("Price history unavailable", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return scoring.TechnicalSignal{}, true
	}

	signal, err := scoring.EvaluateRSI(closes)
	if err != nil {
		s.log.Warn("RSI not computable", logger.ErrorField(err), logger.StringField("ticker", ticker), logger.IntField("closes", len(closes)))
		return scoring.TechnicalSignal{}, true
	}
	return signal, false
}

func (s *analyzerService) fetchNews(ctx context.Context, ticker string) ([]dto.NewsItem, bool) {
	ctxTimeout, cancel := context.WithTimeout(ctx, s.providerTimeout())
	defer cancel()

	newsItems, err := s.newsRepo.FindRecentNews(ctxTimeout, ticker)
	if err != nil {
		s.log.Warn("News harvest failed", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return nil, true
	}
	return newsItems, false
}

// assessQualitative runs the narrative stage. Any adapter failure, including
// a timeout, is recovered as NEUTRAL/LOW with the missing flag set.
func (s *analyzerService) assessQualitative(ctx context.Context, ticker, sector string, fundamentals *dto.StockFundamentals, newsItems []dto.NewsItem) *dto.QualitativeAssessment {
	ctxTimeout, cancel := context.WithTimeout(ctx, s.aiTimeout())
	defer cancel()

	assessment, err := s.aiRepo.AssessQualitative(ctxTimeout, ticker, sector, fundamentals, newsItems)
	if err != nil {
		s.log.Warn("Qualitative assessment failed, using neutral fallback", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return &dto.QualitativeAssessment{
			Ticker:              ticker,
			Sentiment:           "NEUTRAL",
			Confidence:          "LOW",
			MissingDataDetected: true,
			Reasoning:           "Narrative assessment unavailable",
		}
	}
	return assessment
}

func (s *analyzerService) buildRecord(
	ticker, sector string,
	breakdown scoring.ScoreBreakdown,
	signal scoring.TechnicalSignal,
	rsiMissing bool,
	quant scoring.QuantVerdict,
	qual scoring.QualVerdict,
	decision scoring.Decision,
	assessment *dto.QualitativeAssessment,
	newsMissing bool,
) (*entity.StockDecision, error) {
	record := &entity.StockDecision{
		Ticker:          ticker,
		Sector:          sector,
		Decision:        string(decision.Action),
		Confidence:      string(decision.Confidence),
		RiskLevel:       string(decision.Risk),
		MatrixRow:       decision.MatrixRow,
		NormalizedScore: breakdown.Normalized,
		QuantVerdict:    string(quant.Action),
		QualSentiment:   string(qual.Sentiment),
		Reasons:         decision.Reasons,
		AnalyzedAt:      utils.TimeNowMarket(),
	}
	if !rsiMissing {
		rsi := signal.RSI
		record.RSI = &rsi
	}

	if breakdown.MissingPE {
		record.MissingData = append(record.MissingData, "pe")
	}
	if breakdown.MissingROE {
		record.MissingData = append(record.MissingData, "roe")
	}
	if breakdown.MissingDebtEquity {
		record.MissingData = append(record.MissingData, "debt_equity")
	}
	if rsiMissing {
		record.MissingData = append(record.MissingData, "rsi")
	}
	if newsMissing {
		record.MissingData = append(record.MissingData, "news")
	}

	record.Reasons = append(record.Reasons, breakdown.Details...)
	record.Reasons = append(record.Reasons, breakdown.Warnings...)

	dataJSON, err := json.Marshal(map[string]interface{}{
		"breakdown":  breakdown,
		"signal":     signal,
		"assessment": assessment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal decision data: %w", err)
	}
	record.Data = dataJSON
	return record, nil
}

func (s *analyzerService) notify(record *entity.StockDecision) {
	if s.telegramBot == nil {
		return
	}
	msg := telegram.FormatDecisionMessage(record)
	if err := s.telegramBot.SendMessage(msg); err != nil {
		s.log.Error("Failed to send telegram message", logger.ErrorField(err), logger.StringField("ticker", record.Ticker))
	}
}

func (s *analyzerService) providerTimeout() time.Duration {
	if s.cfg.Analyzer.ProviderTimeout <= 0 {
		return 30 * time.Second
	}
	return s.cfg.Analyzer.ProviderTimeout
}

func (s *analyzerService) aiTimeout() time.Duration {
	if s.cfg.Analyzer.AITimeout <= 0 {
		return 2 * time.Minute
	}
	return s.cfg.Analyzer.AITimeout
}

func (s *analyzerService) ProcessTask(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamAnalyzeTask, ">"}, // ">" means only new messages
		Count:    1,
		Block:    2 * time.Second, // Block briefly to allow graceful shutdown
	}).Result()
	if err != nil {
		// Context cancellation and redis.Nil are expected during shutdown or idle periods.
		if err == context.Canceled || err == redis.Nil {
			return
		}
		s.log.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return
	}

	message := streams[0].Messages[0]
	streamData, ok := s.decodeStreamMessage(message)
	if !ok {
		return
	}

	s.log.Debug("Processing analyze task", logger.StringField("ticker", streamData.Ticker))

	if _, err := s.Analyze(ctx, streamData.Ticker, streamData.Sector); err != nil {
		if errors.Is(err, ErrMalformedTicker) {
			// A malformed ticker never succeeds on retry.
			s.log.Error("Dropping malformed analyze task", logger.ErrorField(err), logger.Field("message_id", message.ID))
			if err := s.ackNDel(ctx, common.RedisStreamAnalyzeTask, message.ID); err != nil {
				s.log.Error("Failed to acknowledge malformed analyze task", logger.ErrorField(err), logger.Field("message_id", message.ID))
			}
			return
		}
		s.log.Error("Failed to analyze ticker", logger.ErrorField(err), logger.Field("message_id", message.ID), logger.StringField("ticker", streamData.Ticker))
		return
	}

	if err := s.ackNDel(ctx, common.RedisStreamAnalyzeTask, message.ID); err != nil {
		s.log.Error("Failed to acknowledge and delete analyze task", logger.ErrorField(err), logger.Field("message_id", message.ID))
		return
	}

	s.log.Debug("Analyze task processed successfully", logger.StringField("ticker", streamData.Ticker))
}

func (s *analyzerService) ProcessRetries(ctx context.Context) {
	msgs, _, err := s.redisClient.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   common.RedisStreamAnalyzeTask,
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer + "-retry",
		MinIdle:  s.cfg.Analyzer.RedisStreamAnalyzeMaxIdleDuration,
		Start:    "0",
		Count:    1,
	}).Result()
	if err != nil {
		s.log.Error("Failed to claim analyze task on retry", logger.ErrorField(err))
		return
	}

	if len(msgs) == 0 {
		s.log.Debug("Retry found no pending messages", logger.StringField("stream", common.RedisStreamAnalyzeTask))
		return
	}

	pendingInfo, err := s.redisClient.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: common.RedisStreamAnalyzeTask,
		Group:  common.RedisStreamGroup,
		Start:  msgs[0].ID,
		End:    msgs[0].ID,
		Count:  1,
	}).Result()
	if err != nil {
		s.log.Error("Failed to get pending info", logger.ErrorField(err))
		return
	}

	if len(pendingInfo) == 0 {
		s.log.Warn("pending msg not found, but exists on xautoclaim",
			logger.StringField("stream", common.RedisStreamAnalyzeTask),
			logger.StringField("message_id", msgs[0].ID))
		return
	}

	msg := msgs[0]
	streamData, ok := s.decodeStreamMessage(msg)
	if !ok {
		return
	}

	if pendingInfo[0].RetryCount >= int64(s.cfg.Analyzer.RedisStreamAnalyzeMaxRetry) {
		s.log.Error("pending msg retry count exceeded",
			logger.StringField("stream", common.RedisStreamAnalyzeTask),
			logger.StringField("message_id", msg.ID),
			logger.StringField("ticker", streamData.Ticker),
			logger.IntField("retry_count", int(pendingInfo[0].RetryCount)),
			logger.IntField("max_retry", s.cfg.Analyzer.RedisStreamAnalyzeMaxRetry),
		)
		if s.telegramBot != nil {
			msgTelegram := telegram.FormatErrorAlertMessage(utils.TimeNowMarket(), fmt.Sprintf("Analyze task retry count exceeded for ticker %s", streamData.Ticker))
			if err := s.telegramBot.SendMessage(msgTelegram); err != nil {
				s.log.Error("Failed to send telegram message for retry exceeded", logger.ErrorField(err), logger.StringField("ticker", streamData.Ticker))
			}
		}
		if err := s.ackNDel(ctx, common.RedisStreamAnalyzeTask, msg.ID); err != nil {
			s.log.Error("Failed to acknowledge and delete analyze task", logger.ErrorField(err), logger.Field("message_id", msg.ID))
		}
		return
	}

	if _, err := s.Analyze(ctx, streamData.Ticker, streamData.Sector); err != nil {
		s.log.Error("Failed to analyze ticker on retry", logger.ErrorField(err), logger.Field("message_id", msg.ID), logger.StringField("ticker", streamData.Ticker))
		return
	}

	if err := s.ackNDel(ctx, common.RedisStreamAnalyzeTask, msg.ID); err != nil {
		s.log.Error("Failed to acknowledge and delete analyze task", logger.ErrorField(err), logger.Field("message_id", msg.ID))
		return
	}
	s.log.Info("Retry analyze task processed successfully", logger.StringField("ticker", streamData.Ticker))
}

func (s *analyzerService) decodeStreamMessage(message redis.XMessage) (dto.StreamDataAnalyzeTask, bool) {
	var streamData dto.StreamDataAnalyzeTask

	taskData, ok := message.Values["payload"].(string)
	if !ok {
		s.log.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", message.ID))
		return streamData, false
	}

	if err := json.Unmarshal([]byte(taskData), &streamData); err != nil {
		s.log.Error("Failed to unmarshal task data", logger.ErrorField(err), logger.Field("message_id", message.ID))
		return streamData, false
	}
	return streamData, true
}

func (s *analyzerService) ackNDel(ctx context.Context, streamName string, messageID string) error {
	if err := s.redisClient.XAck(ctx, streamName, common.RedisStreamGroup, messageID).Err(); err != nil {
		return err
	}
	if err := s.redisClient.XDel(ctx, streamName, messageID).Err(); err != nil {
		return err
	}
	return nil
}
