package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-equity-advisor/internal/entity"
	"golang-equity-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDecisionRepository struct {
	byTickerArg string
	records     []entity.StockDecision
}

func (f *fakeDecisionRepository) Create(ctx context.Context, decision *entity.StockDecision) error {
	return nil
}

func (f *fakeDecisionRepository) FindRecent(ctx context.Context, limit int) ([]entity.StockDecision, error) {
	return f.records, nil
}

func (f *fakeDecisionRepository) FindByTicker(ctx context.Context, ticker string, limit int) ([]entity.StockDecision, error) {
	f.byTickerArg = ticker
	return f.records, nil
}

func testHandlerLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("debug", "console")
	require.NoError(t, err)
	return log
}

func TestGetDecisions_NormalizesTickerFilter(t *testing.T) {
	repo := &fakeDecisionRepository{
		records: []entity.StockDecision{{
			Ticker:     "INFY.NS",
			Decision:   "BUY",
			Confidence: "HIGH",
			RiskLevel:  "LOW",
			AnalyzedAt: time.Now(),
		}},
	}
	h := NewAnalyzeHandler(nil, nil, repo, testHandlerLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/decisions?ticker=infy", nil)
	rec := httptest.NewRecorder()

	err := h.GetDecisions(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Rows are persisted under the normalized symbol; the filter must be
	// normalized the same way to match them.
	assert.Equal(t, "INFY.NS", repo.byTickerArg)
}

func TestGetDecisions_RejectsInvalidLimit(t *testing.T) {
	h := NewAnalyzeHandler(nil, nil, &fakeDecisionRepository{}, testHandlerLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/decisions?limit=zero", nil)
	rec := httptest.NewRecorder()

	err := h.GetDecisions(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
