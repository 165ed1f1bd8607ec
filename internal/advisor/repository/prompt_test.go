package repository

import (
	"testing"

	"golang-equity-advisor/internal/advisor/dto"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestBuildQualitativeAssessmentPrompt_IncludesAllFundamentals(t *testing.T) {
	fundamentals := &dto.StockFundamentals{
		Ticker:       "INFY.NS",
		Sector:       "Technology",
		PE:           fptr(24.5),
		ROE:          fptr(0.31),
		DebtToEquity: fptr(8.2),
		EPS:          fptr(62.1),
		MarketCap:    fptr(6.2e12),
		Source:       "yahoo_finance",
	}

	prompt := BuildQualitativeAssessmentPrompt("INFY.NS", "Technology", fundamentals, nil)

	assert.Contains(t, prompt, "P/E: 24.50")
	assert.Contains(t, prompt, "ROE: 0.31")
	assert.Contains(t, prompt, "Debt/Equity: 8.20")
	assert.Contains(t, prompt, "EPS: 62.10")
	assert.Contains(t, prompt, "Market Cap: 6200000000000")
	assert.Contains(t, prompt, "Recent news: none found")
}

func TestBuildQualitativeAssessmentPrompt_MarksUnavailableFields(t *testing.T) {
	fundamentals := &dto.StockFundamentals{
		Ticker: "INFY.NS",
		Source: "alpha_vantage",
		PE:     fptr(24.5),
	}

	prompt := BuildQualitativeAssessmentPrompt("INFY.NS", "Unknown", fundamentals, nil)

	assert.Contains(t, prompt, "ROE: N/A")
	assert.Contains(t, prompt, "EPS: N/A")
	assert.Contains(t, prompt, "Market Cap: N/A")
}
