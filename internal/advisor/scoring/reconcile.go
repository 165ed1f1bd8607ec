package scoring

import "fmt"

// Sentiment is the qualitative stage's verdict vocabulary.
type Sentiment string

const (
	SentimentBullish Sentiment = "BULLISH"
	SentimentNeutral Sentiment = "NEUTRAL"
	SentimentBearish Sentiment = "BEARISH"
)

// QualVerdict is the qualitative stage output as produced by the narrative
// classifier adapter.
type QualVerdict struct {
	Sentiment           Sentiment  `json:"sentiment"`
	Confidence          Confidence `json:"confidence"`
	MissingDataDetected bool       `json:"missing_data_detected"`
}

// FinalAction is the reconciled decision vocabulary. SELL is part of the
// output contract even though the matrix never emits it; downstream
// consumers must be able to represent it.
type FinalAction string

const (
	DecisionBuy   FinalAction = "BUY"
	DecisionSell  FinalAction = "SELL"
	DecisionWatch FinalAction = "WATCH"
	DecisionAvoid FinalAction = "AVOID"
)

// RiskLevel is the reconciled risk vocabulary.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Decision is the terminal, immutable result of reconciliation.
type Decision struct {
	Action     FinalAction `json:"action"`
	Confidence Confidence  `json:"confidence"`
	Risk       RiskLevel   `json:"risk"`
	MatrixRow  string      `json:"matrix_row"`
	Downgraded bool        `json:"confidence_downgraded"`
	Reasons    []string    `json:"reasons"`
}

type matrixKey struct {
	quant QuantAction
	qual  Sentiment
}

type matrixCell struct {
	action     FinalAction
	confidence Confidence
}

// decisionMatrix is the fixed 3x3 reconciliation table. It is total over
// the verdict vocabularies and is never computed at runtime.
var decisionMatrix = map[matrixKey]matrixCell{
	{QuantBuy, SentimentBullish}:   {DecisionBuy, ConfidenceHigh},
	{QuantBuy, SentimentNeutral}:   {DecisionBuy, ConfidenceMedium},
	{QuantBuy, SentimentBearish}:   {DecisionWatch, ConfidenceMedium},
	{QuantWatch, SentimentBullish}: {DecisionBuy, ConfidenceMedium},
	{QuantWatch, SentimentNeutral}: {DecisionWatch, ConfidenceMedium},
	{QuantWatch, SentimentBearish}: {DecisionWatch, ConfidenceLow},
	{QuantAvoid, SentimentBullish}: {DecisionWatch, ConfidenceLow},
	{QuantAvoid, SentimentNeutral}: {DecisionAvoid, ConfidenceMedium},
	{QuantAvoid, SentimentBearish}: {DecisionAvoid, ConfidenceHigh},
}

// DowngradeConfidence lowers confidence by exactly one ordinal step with a
// floor at LOW. LOW downgraded is LOW, which makes repeated application a
// no-op beyond the first step.
func DowngradeConfidence(c Confidence) Confidence {
	switch c {
	case ConfidenceHigh:
		return ConfidenceMedium
	case ConfidenceMedium:
		return ConfidenceLow
	default:
		return ConfidenceLow
	}
}

// Reconcile applies the decision matrix over the two stage verdicts and
// computes risk, then runs the missing-data confidence downgrade exactly
// once. This is the single authority for that adjustment; neither upstream
// stage may pre-apply it.
func Reconcile(quant QuantVerdict, qual QualVerdict, anyMissingData bool, debtTier DebtTier) Decision {
	cell, ok := decisionMatrix[matrixKey{quant.Action, qual.Sentiment}]
	if !ok {
		// Unreachable for the defined vocabularies; degrade safely instead
		// of panicking on a corrupted verdict.
		cell = matrixCell{DecisionWatch, ConfidenceLow}
	}

	decision := Decision{
		Action:     cell.action,
		Confidence: cell.confidence,
		MatrixRow:  fmt.Sprintf("QUANT_%s+QUAL_%s", quant.Action, qual.Sentiment),
	}
	decision.Reasons = append(decision.Reasons,
		fmt.Sprintf("Decision matrix row %s -> %s (%s confidence)", decision.MatrixRow, decision.Action, decision.Confidence))

	// Risk keys on the quantitative stage's metric flag, not anyMissingData;
	// missing news or sourcing lowers confidence without raising risk.
	switch {
	case debtTier == DebtTierRisky:
		decision.Risk = RiskHigh
		decision.Reasons = append(decision.Reasons, "Risk HIGH: sector-aware debt check flagged leverage as risky")
	case quant.MissingDataDetected:
		decision.Risk = RiskMedium
		decision.Reasons = append(decision.Reasons, "Risk MEDIUM: one or more contributing metrics unavailable")
	default:
		decision.Risk = RiskLow
	}

	if anyMissingData {
		downgraded := DowngradeConfidence(decision.Confidence)
		if downgraded != decision.Confidence {
			decision.Reasons = append(decision.Reasons,
				fmt.Sprintf("Confidence downgraded %s -> %s (missing data detected)", decision.Confidence, downgraded))
		}
		decision.Confidence = downgraded
		decision.Downgraded = true
	}

	return decision
}
