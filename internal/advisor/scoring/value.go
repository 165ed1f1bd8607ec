package scoring

import (
	"fmt"
	"math"
)

// Metric point weights. A missing metric removes its weight from the
// attainable maximum instead of contributing zero.
const (
	WeightPE         = 35
	WeightROE        = 35
	WeightDebtEquity = 30
)

// DebtTier is the sector-aware leverage classification.
type DebtTier string

const (
	DebtTierVerySafe   DebtTier = "VERY_SAFE"
	DebtTierAcceptable DebtTier = "ACCEPTABLE"
	DebtTierMonitor    DebtTier = "MONITOR"
	DebtTierRisky      DebtTier = "RISKY"
	DebtTierUnknown    DebtTier = "UNKNOWN"
)

// ScoreBreakdown is the immutable result of one value-scoring pass.
type ScoreBreakdown struct {
	Sector            string   `json:"sector"`
	Raw               int      `json:"raw_score"`
	MaxPossible       int      `json:"max_possible"`
	Normalized        int      `json:"normalized_score"`
	Details           []string `json:"details"`
	Warnings          []string `json:"warnings"`
	DebtTier          DebtTier `json:"debt_tier"`
	MissingPE         bool     `json:"missing_pe"`
	MissingROE        bool     `json:"missing_roe"`
	MissingDebtEquity bool     `json:"missing_debt_equity"`
}

// MissingAny reports whether any scored metric was unavailable.
func (b ScoreBreakdown) MissingAny() bool {
	return b.MissingPE || b.MissingROE || b.MissingDebtEquity
}

// Scorer computes the sector-aware 0-100 value score.
type Scorer struct {
	benchmarks *Benchmarks
}

// NewScorer creates a Scorer using the given benchmark tables.
func NewScorer(benchmarks *Benchmarks) *Scorer {
	return &Scorer{benchmarks: benchmarks}
}

// Score evaluates P/E, ROE, and Debt/Equity against fixed tier ladders,
// skipping missing metrics and renormalizing over the metrics present.
// Present values are assumed to be valid reals; sanitizing is the caller's
// responsibility.
func (s *Scorer) Score(pe, roe, debtEquity Metric, sector string) ScoreBreakdown {
	breakdown := ScoreBreakdown{
		Sector:   sector,
		DebtTier: DebtTierUnknown,
	}

	benchmark := s.benchmarks.Debt(sector)

	// P/E: lower is better.
	if !pe.Valid {
		breakdown.MissingPE = true
		breakdown.Warnings = append(breakdown.Warnings, fmt.Sprintf("P/E is N/A - P/E score skipped (0/%d)", WeightPE))
	} else {
		breakdown.MaxPossible += WeightPE
		switch {
		case pe.Value < 15:
			breakdown.Raw += 35
			breakdown.Details = append(breakdown.Details, "Excellent P/E (undervalued)")
		case pe.Value < 20:
			breakdown.Raw += 25
			breakdown.Details = append(breakdown.Details, "Good P/E")
		case pe.Value < 30:
			breakdown.Raw += 10
			breakdown.Details = append(breakdown.Details, "Fair P/E")
		default:
			breakdown.Details = append(breakdown.Details, "High P/E - overvaluation risk")
		}
	}

	// ROE: higher is better.
	if !roe.Valid {
		breakdown.MissingROE = true
		breakdown.Warnings = append(breakdown.Warnings, fmt.Sprintf("ROE is N/A - ROE score skipped (0/%d)", WeightROE))
	} else {
		breakdown.MaxPossible += WeightROE
		switch {
		case roe.Value > 0.20:
			breakdown.Raw += 35
			breakdown.Details = append(breakdown.Details, "Excellent ROE - strong management")
		case roe.Value > 0.15:
			breakdown.Raw += 25
			breakdown.Details = append(breakdown.Details, "Good ROE")
		case roe.Value > 0.10:
			breakdown.Raw += 10
			breakdown.Details = append(breakdown.Details, "Fair ROE")
		default:
			breakdown.Details = append(breakdown.Details, "Low ROE - efficiency concerns")
		}
	}

	// Debt/Equity: judged against the sector's leverage norms.
	if !debtEquity.Valid {
		breakdown.MissingDebtEquity = true
		breakdown.Warnings = append(breakdown.Warnings, fmt.Sprintf("Debt/Equity is N/A - D/E score skipped (0/%d)", WeightDebtEquity))
	} else {
		breakdown.MaxPossible += WeightDebtEquity
		switch {
		case debtEquity.Value < benchmark.NormalMax*0.3:
			breakdown.Raw += 30
			breakdown.DebtTier = DebtTierVerySafe
			breakdown.Details = append(breakdown.Details, fmt.Sprintf("Low debt for %s - very safe", sector))
		case debtEquity.Value < benchmark.NormalMax:
			breakdown.Raw += 20
			breakdown.DebtTier = DebtTierAcceptable
			breakdown.Details = append(breakdown.Details, fmt.Sprintf("Normal debt for %s - acceptable", sector))
		case debtEquity.Value < benchmark.RiskyAbove:
			breakdown.Raw += 10
			breakdown.DebtTier = DebtTierMonitor
			breakdown.Details = append(breakdown.Details, fmt.Sprintf("Elevated debt for %s - monitor", sector))
		default:
			breakdown.DebtTier = DebtTierRisky
			breakdown.Details = append(breakdown.Details, fmt.Sprintf("High debt even for %s - risky (threshold: %.0f)", sector, benchmark.RiskyAbove))
		}
	}

	if breakdown.MaxPossible > 0 {
		breakdown.Normalized = int(math.Round(100 * float64(breakdown.Raw) / float64(breakdown.MaxPossible)))
	}

	return breakdown
}
