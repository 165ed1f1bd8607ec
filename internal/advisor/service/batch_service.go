package service

import (
	"context"
	"sync"

	"golang-equity-advisor/internal/advisor/dto"
	"golang-equity-advisor/internal/entity"
	"golang-equity-advisor/pkg/logger"
	"golang-equity-advisor/pkg/utils"
)

// BatchService fans one analysis out over many tickers with a bounded
// worker pool.
type BatchService interface {
	AnalyzeMany(ctx context.Context, tickers []string, sector string, maxConcurrency int) []dto.TickerResult
}

type batchService struct {
	log      *logger.Logger
	analyzer AnalyzerService
}

// NewBatchService creates a new BatchService.
func NewBatchService(log *logger.Logger, analyzer AnalyzerService) BatchService {
	return &batchService{
		log:      log,
		analyzer: analyzer,
	}
}

// AnalyzeMany analyzes every ticker concurrently under the given bound
// (default 3). One ticker's failure becomes its own failure entry; the
// siblings are unaffected. Results are tagged by ticker; ordering follows
// the input, not completion.
func (s *batchService) AnalyzeMany(ctx context.Context, tickers []string, sector string, maxConcurrency int) []dto.TickerResult {
	if maxConcurrency <= 0 {
		maxConcurrency = 3
	}

	results := make([]dto.TickerResult, len(tickers))
	semaphore := make(chan struct{}, maxConcurrency)
	var wg sync.WaitGroup

	for i, ticker := range tickers {
		if !utils.ShouldContinue(ctx, s.log) {
			for j := i; j < len(tickers); j++ {
				results[j] = dto.TickerResult{Ticker: tickers[j], Error: ctx.Err().Error()}
			}
			break
		}

		i, ticker := i, ticker
		wg.Add(1)
		utils.GoSafe(func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			record, err := s.analyzer.Analyze(ctx, ticker, sector)
			if err != nil {
				s.log.Error("Batch ticker analysis failed", logger.ErrorField(err), logger.StringField("ticker", ticker))
				results[i] = dto.TickerResult{Ticker: ticker, Error: err.Error()}
				return
			}
			results[i] = dto.TickerResult{Ticker: record.Ticker, Response: DecisionToResponse(record)}
		})
	}

	wg.Wait()
	return results
}

// DecisionToResponse maps a persisted decision to its API shape.
func DecisionToResponse(record *entity.StockDecision) *dto.AnalyzeResponse {
	return &dto.AnalyzeResponse{
		Ticker:          record.Ticker,
		Sector:          record.Sector,
		Decision:        record.Decision,
		Confidence:      record.Confidence,
		RiskLevel:       record.RiskLevel,
		MatrixRow:       record.MatrixRow,
		NormalizedScore: record.NormalizedScore,
		RSI:             record.RSI,
		QuantVerdict:    record.QuantVerdict,
		QualSentiment:   record.QualSentiment,
		MissingData:     record.MissingData,
		Reasons:         record.Reasons,
		AnalyzedAt:      record.AnalyzedAt,
	}
}
