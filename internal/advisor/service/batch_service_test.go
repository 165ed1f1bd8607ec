package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"golang-equity-advisor/internal/entity"
	"golang-equity-advisor/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	mu       sync.Mutex
	inFlight int32
	maxSeen  int32
	failFor  map[string]error
	analyzed []string
}

func (f *fakeAnalyzer) ProcessTask(ctx context.Context)    {}
func (f *fakeAnalyzer) ProcessRetries(ctx context.Context) {}

func (f *fakeAnalyzer) Analyze(ctx context.Context, ticker, sector string) (*entity.StockDecision, error) {
	current := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		seen := atomic.LoadInt32(&f.maxSeen)
		if current <= seen || atomic.CompareAndSwapInt32(&f.maxSeen, seen, current) {
			break
		}
	}

	normalized, err := utils.NormalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	if failErr, ok := f.failFor[ticker]; ok {
		return nil, failErr
	}

	f.mu.Lock()
	f.analyzed = append(f.analyzed, normalized)
	f.mu.Unlock()

	return &entity.StockDecision{Ticker: normalized, Decision: "WATCH", Confidence: "MEDIUM", RiskLevel: "LOW"}, nil
}

func TestAnalyzeMany_ResultsTaggedByTicker(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	svc := NewBatchService(testLogger(t), analyzer)

	results := svc.AnalyzeMany(context.Background(), []string{"INFY", "TCS", "WIPRO"}, "", 3)

	require.Len(t, results, 3)
	assert.Equal(t, "INFY.NS", results[0].Ticker)
	assert.Equal(t, "TCS.NS", results[1].Ticker)
	assert.Equal(t, "WIPRO.NS", results[2].Ticker)
	for _, r := range results {
		require.NotNil(t, r.Response, r.Ticker)
		assert.Empty(t, r.Error)
	}
}

func TestAnalyzeMany_FailureIsolation(t *testing.T) {
	analyzer := &fakeAnalyzer{failFor: map[string]error{"TCS": errors.New("provider unavailable")}}
	svc := NewBatchService(testLogger(t), analyzer)

	results := svc.AnalyzeMany(context.Background(), []string{"INFY", "TCS", "WIPRO"}, "", 2)

	require.Len(t, results, 3)
	assert.NotNil(t, results[0].Response)
	assert.Nil(t, results[1].Response)
	assert.Contains(t, results[1].Error, "provider unavailable")
	assert.NotNil(t, results[2].Response)
}

func TestAnalyzeMany_RespectsConcurrencyBound(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	svc := NewBatchService(testLogger(t), analyzer)

	tickers := []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF", "GGG", "HHH"}
	results := svc.AnalyzeMany(context.Background(), tickers, "", 2)

	require.Len(t, results, len(tickers))
	assert.LessOrEqual(t, analyzer.maxSeen, int32(2))
}

func TestAnalyzeMany_DefaultBoundWhenUnset(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	svc := NewBatchService(testLogger(t), analyzer)

	results := svc.AnalyzeMany(context.Background(), []string{"AAA", "BBB", "CCC", "DDD"}, "", 0)

	require.Len(t, results, 4)
	assert.LessOrEqual(t, analyzer.maxSeen, int32(3))
}

func TestAnalyzeMany_MalformedTickerFailsOnlyItself(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	svc := NewBatchService(testLogger(t), analyzer)

	results := svc.AnalyzeMany(context.Background(), []string{"INFY", "bad ticker!!"}, "", 2)

	require.Len(t, results, 2)
	assert.NotNil(t, results[0].Response)
	assert.Nil(t, results[1].Response)
	assert.NotEmpty(t, results[1].Error)
}
