package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// StockDecision is the terminal output of one analysis run. Rows are written
// once and never updated; every run for the same ticker appends a new row.
type StockDecision struct {
	ID              int64          `json:"id"`
	Ticker          string         `gorm:"not null" json:"ticker"`
	Sector          string         `json:"sector"`
	Decision        string         `gorm:"not null" json:"decision"`
	Confidence      string         `gorm:"not null" json:"confidence"`
	RiskLevel       string         `gorm:"not null" json:"risk_level"`
	MatrixRow       string         `json:"matrix_row"`
	NormalizedScore int            `json:"normalized_score"`
	RSI             *float64       `json:"rsi,omitempty"`
	QuantVerdict    string         `json:"quant_verdict"`
	QualSentiment   string         `json:"qual_sentiment"`
	MissingData     pq.StringArray `gorm:"type:text[]" json:"missing_data"`
	Reasons         pq.StringArray `gorm:"type:text[]" json:"reasons"`
	Data            datatypes.JSON `gorm:"type:jsonb" json:"data"`
	AnalyzedAt      time.Time      `json:"analyzed_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (StockDecision) TableName() string {
	return "stock_decisions"
}
