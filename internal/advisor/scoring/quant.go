package scoring

// QuantAction is the quantitative stage's verdict vocabulary.
type QuantAction string

const (
	QuantBuy   QuantAction = "BUY"
	QuantWatch QuantAction = "WATCH"
	QuantAvoid QuantAction = "AVOID"
)

// Confidence is the shared ordinal confidence scale.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// QuantVerdict is the quantitative stage output.
type QuantVerdict struct {
	Action              QuantAction `json:"action"`
	Confidence          Confidence  `json:"confidence"`
	MissingDataDetected bool        `json:"missing_data_detected"`
}

// CombineQuant folds the value score and RSI into a single verdict. The
// rules are evaluated in priority order with a single winner:
//
//  1. score > 60 AND rsi < 45  -> BUY
//  2. score < 40 OR  rsi > 70  -> AVOID
//  3. otherwise                -> WATCH
//
// rsiMissing suppresses the RSI conditions but never blocks the score-only
// AVOID branch. Confidence is not downgraded here; the reconciler owns the
// missing-data adjustment.
func CombineQuant(breakdown ScoreBreakdown, signal TechnicalSignal, rsiMissing bool) QuantVerdict {
	verdict := QuantVerdict{
		MissingDataDetected: breakdown.MissingAny() || rsiMissing,
	}

	switch {
	case !rsiMissing && breakdown.Normalized > 60 && signal.RSI < 45:
		verdict.Action = QuantBuy
	case breakdown.Normalized < 40 || (!rsiMissing && signal.RSI > 70):
		verdict.Action = QuantAvoid
	default:
		verdict.Action = QuantWatch
	}

	if verdict.MissingDataDetected {
		verdict.Confidence = ConfidenceLow
	} else {
		verdict.Confidence = ConfidenceHigh
	}

	return verdict
}
