package service

import (
	"context"
	"errors"
	"testing"

	"golang-equity-advisor/internal/advisor/config"
	"golang-equity-advisor/internal/advisor/dto"
	"golang-equity-advisor/internal/entity"
	"golang-equity-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

type fakeYahooRepository struct {
	fundamentals    *dto.StockFundamentals
	fundamentalsErr error
	closes          []float64
	closesErr       error
}

func (f *fakeYahooRepository) GetFundamentals(ctx context.Context, ticker string) (*dto.StockFundamentals, error) {
	if f.fundamentalsErr != nil {
		return nil, f.fundamentalsErr
	}
	return f.fundamentals, nil
}

func (f *fakeYahooRepository) GetClosingPrices(ctx context.Context, param dto.GetStockDataParam) ([]float64, error) {
	if f.closesErr != nil {
		return nil, f.closesErr
	}
	return f.closes, nil
}

type fakeFundamentalsRepository struct {
	fundamentals *dto.StockFundamentals
	err          error
}

func (f *fakeFundamentalsRepository) GetFundamentals(ctx context.Context, ticker string) (*dto.StockFundamentals, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.fundamentals, nil
}

type fakeNewsRepository struct {
	items []dto.NewsItem
	err   error
}

func (f *fakeNewsRepository) FindRecentNews(ctx context.Context, ticker string) ([]dto.NewsItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeAIRepository struct {
	assessment *dto.QualitativeAssessment
	err        error
	calls      int
}

func (f *fakeAIRepository) AssessQualitative(ctx context.Context, ticker, sector string, fundamentals *dto.StockFundamentals, newsItems []dto.NewsItem) (*dto.QualitativeAssessment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.assessment, nil
}

type fakeDecisionRepository struct {
	created []*entity.StockDecision
	err     error
}

func (f *fakeDecisionRepository) Create(ctx context.Context, decision *entity.StockDecision) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, decision)
	return nil
}

func (f *fakeDecisionRepository) FindRecent(ctx context.Context, limit int) ([]entity.StockDecision, error) {
	return nil, nil
}

func (f *fakeDecisionRepository) FindByTicker(ctx context.Context, ticker string, limit int) ([]entity.StockDecision, error) {
	return nil, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("debug", "console")
	require.NoError(t, err)
	return log
}

// risingCloses yields n strictly increasing closes.
func risingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return closes
}

func bullishAssessment() *dto.QualitativeAssessment {
	return &dto.QualitativeAssessment{
		Sentiment:  "BULLISH",
		Confidence: "HIGH",
		Claims: []dto.AssessmentClaim{
			{Statement: "ROE reported at 22%", Attribution: dto.AttributionKnown},
		},
		Reasoning: "fundamentals support the narrative",
	}
}

func newTestAnalyzer(yahoo *fakeYahooRepository, av *fakeFundamentalsRepository, news *fakeNewsRepository, ai *fakeAIRepository, decisions *fakeDecisionRepository, t *testing.T) AnalyzerService {
	return NewAnalyzerService(&config.Config{}, testLogger(t), nil, ai, yahoo, av, news, decisions, nil)
}

func TestAnalyze_MalformedTickerRejectedSynchronously(t *testing.T) {
	decisions := &fakeDecisionRepository{}
	ai := &fakeAIRepository{assessment: bullishAssessment()}
	svc := newTestAnalyzer(&fakeYahooRepository{}, &fakeFundamentalsRepository{}, &fakeNewsRepository{}, ai, decisions, t)

	_, err := svc.Analyze(context.Background(), "not a ticker!!", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTicker)
	assert.Empty(t, decisions.created)
	assert.Zero(t, ai.calls)
}

func TestAnalyze_FullDataNoDowngrade(t *testing.T) {
	yahoo := &fakeYahooRepository{
		fundamentals: &dto.StockFundamentals{
			PE: ptr(12), ROE: ptr(0.22), DebtToEquity: ptr(10),
			Sector: "Technology", Source: "yahoo_finance",
		},
		// Declines keep RSI below the buy threshold.
		closes: []float64{120, 119, 118, 117, 116, 115, 114, 115, 114, 113, 112, 111, 112, 111, 110, 109},
	}
	decisions := &fakeDecisionRepository{}
	svc := newTestAnalyzer(yahoo, &fakeFundamentalsRepository{}, &fakeNewsRepository{items: []dto.NewsItem{{Title: "results beat estimates"}}}, &fakeAIRepository{assessment: bullishAssessment()}, decisions, t)

	record, err := svc.Analyze(context.Background(), "INFY", "")

	require.NoError(t, err)
	assert.Equal(t, "INFY.NS", record.Ticker)
	assert.Equal(t, "Technology", record.Sector)
	assert.Equal(t, "BUY", record.Decision)
	assert.Equal(t, "HIGH", record.Confidence)
	assert.Equal(t, "LOW", record.RiskLevel)
	assert.Equal(t, 100, record.NormalizedScore)
	assert.Empty(t, record.MissingData)
	require.NotNil(t, record.RSI)
	require.Len(t, decisions.created, 1)
}

func TestAnalyze_ShortHistoryDowngradesConfidence(t *testing.T) {
	yahoo := &fakeYahooRepository{
		fundamentals: &dto.StockFundamentals{
			PE: ptr(12), ROE: ptr(0.22), DebtToEquity: ptr(10),
			Sector: "Technology", Source: "yahoo_finance",
		},
		closes: risingCloses(10), // too short for RSI
	}
	decisions := &fakeDecisionRepository{}
	svc := newTestAnalyzer(yahoo, &fakeFundamentalsRepository{}, &fakeNewsRepository{}, &fakeAIRepository{assessment: bullishAssessment()}, decisions, t)

	record, err := svc.Analyze(context.Background(), "INFY", "")

	require.NoError(t, err)
	assert.Nil(t, record.RSI)
	assert.Contains(t, []string(record.MissingData), "rsi")
	// Score 100 but no RSI: quant WATCH, qual BULLISH -> base BUY/MEDIUM,
	// downgraded once for the missing data.
	assert.Equal(t, "WATCH", record.QuantVerdict)
	assert.Equal(t, "BUY", record.Decision)
	assert.Equal(t, "LOW", record.Confidence)
	assert.Equal(t, "MEDIUM", record.RiskLevel)
}

func TestAnalyze_AIFailureFallsBackToNeutral(t *testing.T) {
	yahoo := &fakeYahooRepository{
		fundamentals: &dto.StockFundamentals{
			PE: ptr(12), ROE: ptr(0.22), DebtToEquity: ptr(10),
			Sector: "Technology", Source: "yahoo_finance",
		},
		closes: []float64{120, 119, 118, 117, 116, 115, 114, 115, 114, 113, 112, 111, 112, 111, 110, 109},
	}
	decisions := &fakeDecisionRepository{}
	svc := newTestAnalyzer(yahoo, &fakeFundamentalsRepository{}, &fakeNewsRepository{}, &fakeAIRepository{err: errors.New("model unavailable")}, decisions, t)

	record, err := svc.Analyze(context.Background(), "INFY", "")

	require.NoError(t, err)
	assert.Equal(t, "NEUTRAL", record.QualSentiment)
	// Quant BUY x qual NEUTRAL -> BUY/MEDIUM, downgraded for missing data.
	// Every contributing metric was present, so risk stays LOW.
	assert.Equal(t, "BUY", record.Decision)
	assert.Equal(t, "LOW", record.Confidence)
	assert.Equal(t, "LOW", record.RiskLevel)
}

func TestAnalyze_ProviderFailureUsesSectorEstimates(t *testing.T) {
	yahoo := &fakeYahooRepository{
		fundamentalsErr: errors.New("yahoo down"),
		closes:          []float64{120, 119, 118, 117, 116, 115, 114, 115, 114, 113, 112, 111, 112, 111, 110, 109},
	}
	av := &fakeFundamentalsRepository{err: errors.New("alpha vantage down")}
	decisions := &fakeDecisionRepository{}
	svc := newTestAnalyzer(yahoo, av, &fakeNewsRepository{}, &fakeAIRepository{assessment: bullishAssessment()}, decisions, t)

	record, err := svc.Analyze(context.Background(), "INFY", "Technology")

	require.NoError(t, err)
	// Estimates keep the pipeline running but the metrics stay flagged.
	assert.ElementsMatch(t, []string{"pe", "roe", "debt_equity"}, []string(record.MissingData))
	assert.NotEqual(t, "HIGH", record.Confidence)
	assert.Equal(t, "MEDIUM", record.RiskLevel)
}

func TestAnalyze_NewsFailureFlagsMissingData(t *testing.T) {
	yahoo := &fakeYahooRepository{
		fundamentals: &dto.StockFundamentals{
			PE: ptr(12), ROE: ptr(0.22), DebtToEquity: ptr(10),
			Sector: "Technology", Source: "yahoo_finance",
		},
		closes: []float64{120, 119, 118, 117, 116, 115, 114, 115, 114, 113, 112, 111, 112, 111, 110, 109},
	}
	decisions := &fakeDecisionRepository{}
	svc := newTestAnalyzer(yahoo, &fakeFundamentalsRepository{}, &fakeNewsRepository{err: errors.New("feed unreachable")}, &fakeAIRepository{assessment: bullishAssessment()}, decisions, t)

	record, err := svc.Analyze(context.Background(), "INFY", "")

	require.NoError(t, err)
	assert.Contains(t, []string(record.MissingData), "news")
	assert.NotEqual(t, "HIGH", record.Confidence)
	// Missing news is not a contributing metric; risk is unaffected.
	assert.Equal(t, "LOW", record.RiskLevel)
}

func TestAnalyze_PersistFailurePropagates(t *testing.T) {
	yahoo := &fakeYahooRepository{
		fundamentals: &dto.StockFundamentals{
			PE: ptr(12), ROE: ptr(0.22), DebtToEquity: ptr(10),
			Sector: "Technology", Source: "yahoo_finance",
		},
		closes: risingCloses(16),
	}
	decisions := &fakeDecisionRepository{err: errors.New("db down")}
	svc := newTestAnalyzer(yahoo, &fakeFundamentalsRepository{}, &fakeNewsRepository{}, &fakeAIRepository{assessment: bullishAssessment()}, decisions, t)

	_, err := svc.Analyze(context.Background(), "INFY", "")

	assert.Error(t, err)
}
