package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang-equity-advisor/internal/advisor/config"
	"golang-equity-advisor/internal/advisor/dto"
	"golang-equity-advisor/pkg/logger"

	"golang.org/x/time/rate"
)

// alphaVantageOverview mirrors the fields this service reads from the
// OVERVIEW endpoint. Alpha Vantage returns every number as a string, with
// "None" and "-" standing in for missing values.
type alphaVantageOverview struct {
	Symbol         string `json:"Symbol"`
	Sector         string `json:"Sector"`
	PERatio        string `json:"PERatio"`
	ReturnOnEquity string `json:"ReturnOnEquityTTM"`
	DebtToEquity   string `json:"DebtToEquity"`
	EPS            string `json:"EPS"`
	MarketCap      string `json:"MarketCapitalization"`
	Note           string `json:"Note"`
	ErrorMessage   string `json:"Error Message"`
	Information    string `json:"Information"`
}

type alphaVantageRepository struct {
	client  *http.Client
	cfg     *config.Config
	logger  *logger.Logger
	limiter *rate.Limiter
}

// NewAlphaVantageRepository creates a FundamentalsRepository backed by the
// Alpha Vantage OVERVIEW endpoint.
func NewAlphaVantageRepository(cfg *config.Config, log *logger.Logger) FundamentalsRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.AlphaVantage.MaxRequestPerMinute)

	return &alphaVantageRepository{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:     cfg,
		logger:  log,
		limiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

func (r *alphaVantageRepository) GetFundamentals(ctx context.Context, ticker string) (*dto.StockFundamentals, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limit: %w", err)
	}

	apiURL := fmt.Sprintf("%s/query?function=OVERVIEW&symbol=%s&apikey=%s",
		r.cfg.AlphaVantage.BaseURL, url.QueryEscape(ticker), r.cfg.AlphaVantage.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Alpha Vantage: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK response from Alpha Vantage: %d - %s", resp.StatusCode, string(body))
	}

	var overview alphaVantageOverview
	if err := json.Unmarshal(body, &overview); err != nil {
		return nil, fmt.Errorf("failed to decode overview response: %w", err)
	}
	if overview.ErrorMessage != "" {
		return nil, fmt.Errorf("alpha vantage error: %s", overview.ErrorMessage)
	}
	if overview.Note != "" || overview.Information != "" {
		return nil, fmt.Errorf("alpha vantage throttled the request")
	}
	if overview.Symbol == "" {
		return nil, fmt.Errorf("alpha vantage returned no overview for %s", ticker)
	}

	return &dto.StockFundamentals{
		Ticker:       ticker,
		Sector:       overview.Sector,
		PE:           parseAlphaVantageNumber(overview.PERatio),
		ROE:          parseAlphaVantageNumber(overview.ReturnOnEquity),
		DebtToEquity: parseAlphaVantageNumber(overview.DebtToEquity),
		EPS:          parseAlphaVantageNumber(overview.EPS),
		MarketCap:    parseAlphaVantageNumber(overview.MarketCap),
		Source:       "alpha_vantage",
	}, nil
}

func parseAlphaVantageNumber(raw string) *float64 {
	if raw == "" || raw == "None" || raw == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
