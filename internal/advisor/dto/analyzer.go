package dto

import (
	"time"

	"golang-equity-advisor/internal/advisor/scoring"
)

// StreamDataAnalyzeTask is the payload published to the analyze stream.
type StreamDataAnalyzeTask struct {
	Ticker     string `json:"ticker"`
	Sector     string `json:"sector"`
	NotifyUser bool   `json:"notify_user"`
}

// AnalyzeRequest is the HTTP body for a single-ticker analysis.
type AnalyzeRequest struct {
	Ticker string `json:"ticker" validate:"required"`
	Sector string `json:"sector"`
}

// BatchAnalyzeRequest is the HTTP body for a multi-ticker analysis.
type BatchAnalyzeRequest struct {
	Tickers        []string `json:"tickers" validate:"required,min=1"`
	Sector         string   `json:"sector"`
	MaxConcurrency int      `json:"max_concurrency"`
}

// AnalyzeResponse is the HTTP representation of one reconciled decision.
type AnalyzeResponse struct {
	Ticker          string                  `json:"ticker"`
	Sector          string                  `json:"sector"`
	Decision        string                  `json:"decision"`
	Confidence      string                  `json:"confidence"`
	RiskLevel       string                  `json:"risk_level"`
	MatrixRow       string                  `json:"matrix_row"`
	NormalizedScore int                     `json:"normalized_score"`
	RSI             *float64                `json:"rsi,omitempty"`
	QuantVerdict    string                  `json:"quant_verdict"`
	QualSentiment   string                  `json:"qual_sentiment"`
	MissingData     []string                `json:"missing_data,omitempty"`
	Reasons         []string                `json:"reasons"`
	Breakdown       *scoring.ScoreBreakdown `json:"breakdown,omitempty"`
	AnalyzedAt      time.Time               `json:"analyzed_at"`
}

// TickerResult tags one batch outcome with its ticker. Exactly one of
// Response and Error is set.
type TickerResult struct {
	Ticker   string           `json:"ticker"`
	Response *AnalyzeResponse `json:"response,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// BatchAnalyzeResponse is the HTTP body for a batch run.
type BatchAnalyzeResponse struct {
	Results []TickerResult `json:"results"`
}
