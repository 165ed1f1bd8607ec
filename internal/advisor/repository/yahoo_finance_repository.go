package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang-equity-advisor/internal/advisor/config"
	"golang-equity-advisor/internal/advisor/dto"
	"golang-equity-advisor/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	yahooCrumbCacheKey = "yahoo:crumb"
	yahooCrumbTTL      = 30 * time.Minute
)

// YahooFinanceRepository fetches price history and fundamentals from the
// Yahoo Finance v8/v10 endpoints.
type YahooFinanceRepository interface {
	PriceHistoryRepository
	FundamentalsRepository
}

type yahooFinanceRepository struct {
	client  *http.Client
	cfg     *config.Config
	logger  *logger.Logger
	limiter *rate.Limiter
	cache   *gocache.Cache
}

// NewYahooFinanceRepository creates a new instance of yahooFinanceRepository.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) (YahooFinanceRepository, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)

	return &yahooFinanceRepository{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		cfg:     cfg,
		logger:  log,
		limiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		cache:   gocache.New(yahooCrumbTTL, 10*time.Minute),
	}, nil
}

// GetClosingPrices returns the chronological close series for a ticker,
// skipping nil data points the chart endpoint reports for halted sessions.
func (r *yahooFinanceRepository) GetClosingPrices(ctx context.Context, param dto.GetStockDataParam) ([]float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limit: %w", err)
	}

	apiURL := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		r.cfg.YahooFinance.BaseURL, url.PathEscape(param.Ticker), param.Range, param.Interval)

	body, err := r.doGet(ctx, apiURL)
	if err != nil {
		return nil, err
	}

	var chartResp dto.YahooFinanceChartResponse
	if err := json.Unmarshal(body, &chartResp); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}
	if chartResp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo finance chart error: %s - %s", chartResp.Chart.Error.Code, chartResp.Chart.Error.Description)
	}
	if len(chartResp.Chart.Result) == 0 || len(chartResp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo finance chart returned no data for %s", param.Ticker)
	}

	var closes []float64
	for _, c := range chartResp.Chart.Result[0].Indicators.Quote[0].Close {
		if c != nil {
			closes = append(closes, *c)
		}
	}
	return closes, nil
}

// GetFundamentals returns the valuation snapshot from quoteSummary. Fields
// the provider omits stay nil.
func (r *yahooFinanceRepository) GetFundamentals(ctx context.Context, ticker string) (*dto.StockFundamentals, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limit: %w", err)
	}

	crumb, err := r.getCrumb(ctx)
	if err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=summaryDetail,financialData,assetProfile,defaultKeyStatistics&crumb=%s",
		r.cfg.YahooFinance.BaseURL, url.PathEscape(ticker), url.QueryEscape(crumb))

	body, err := r.doGet(ctx, apiURL)
	if err != nil {
		return nil, err
	}

	var summaryResp dto.YahooQuoteSummaryResponse
	if err := json.Unmarshal(body, &summaryResp); err != nil {
		return nil, fmt.Errorf("failed to decode quote summary response: %w", err)
	}
	if summaryResp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo finance quote summary error: %s - %s",
			summaryResp.QuoteSummary.Error.Code, summaryResp.QuoteSummary.Error.Description)
	}
	if len(summaryResp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo finance quote summary returned no data for %s", ticker)
	}

	result := summaryResp.QuoteSummary.Result[0]
	fundamentals := &dto.StockFundamentals{
		Ticker: ticker,
		Source: "yahoo_finance",
	}
	if result.SummaryDetail != nil {
		fundamentals.PE = result.SummaryDetail.TrailingPE.Raw
		fundamentals.MarketCap = result.SummaryDetail.MarketCap.Raw
	}
	if result.FinancialData != nil {
		fundamentals.ROE = result.FinancialData.ReturnOnEquity.Raw
		fundamentals.DebtToEquity = result.FinancialData.DebtToEquity.Raw
	}
	if result.DefaultKeyStatistics != nil {
		fundamentals.EPS = result.DefaultKeyStatistics.TrailingEps.Raw
	}
	if result.AssetProfile != nil {
		fundamentals.Sector = result.AssetProfile.Sector
	}
	return fundamentals, nil
}

// getCrumb fetches the session crumb quoteSummary requires, caching it for
// the cookie's useful lifetime.
func (r *yahooFinanceRepository) getCrumb(ctx context.Context) (string, error) {
	if cached, found := r.cache.Get(yahooCrumbCacheKey); found {
		return cached.(string), nil
	}

	// Prime the session cookie before asking for the crumb.
	if _, err := r.doGet(ctx, "https://fc.yahoo.com"); err != nil {
		r.logger.Debug("Yahoo cookie priming returned error", logger.ErrorField(err))
	}

	body, err := r.doGet(ctx, "https://query1.finance.yahoo.com/v1/test/getcrumb")
	if err != nil {
		return "", fmt.Errorf("failed to fetch crumb: %w", err)
	}

	crumb := string(body)
	if crumb == "" {
		return "", fmt.Errorf("yahoo finance returned an empty crumb")
	}

	r.cache.Set(yahooCrumbCacheKey, crumb, yahooCrumbTTL)
	return crumb, nil
}

func (r *yahooFinanceRepository) doGet(ctx context.Context, apiURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Yahoo Finance: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK response from Yahoo Finance: %d - %s", resp.StatusCode, string(body))
	}
	return body, nil
}
