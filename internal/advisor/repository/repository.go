package repository

import (
	"context"

	"golang-equity-advisor/internal/advisor/dto"
)

// AIRepository assesses the qualitative narrative around a ticker.
type AIRepository interface {
	AssessQualitative(ctx context.Context, ticker, sector string, fundamentals *dto.StockFundamentals, newsItems []dto.NewsItem) (*dto.QualitativeAssessment, error)
}

// FundamentalsRepository fetches the valuation snapshot for a ticker.
type FundamentalsRepository interface {
	GetFundamentals(ctx context.Context, ticker string) (*dto.StockFundamentals, error)
}

// PriceHistoryRepository fetches chronological closing prices.
type PriceHistoryRepository interface {
	GetClosingPrices(ctx context.Context, param dto.GetStockDataParam) ([]float64, error)
}

// NewsRepository harvests recent news for a ticker.
type NewsRepository interface {
	FindRecentNews(ctx context.Context, ticker string) ([]dto.NewsItem, error)
}
