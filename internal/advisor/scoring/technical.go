package scoring

import (
	"errors"
	"fmt"
)

// RSIPeriod is the lookback window for the relative strength index.
const RSIPeriod = 14

// ErrInsufficientHistory is reported when the price series is too short for
// a defined RSI. Callers treat it as a missing-data condition, not a failure.
var ErrInsufficientHistory = errors.New("insufficient price history")

// Signal is the RSI band classification.
type Signal string

const (
	SignalOversold           Signal = "OVERSOLD"
	SignalSlightlyOversold   Signal = "SLIGHTLY_OVERSOLD"
	SignalNeutral            Signal = "NEUTRAL"
	SignalSlightlyOverbought Signal = "SLIGHTLY_OVERBOUGHT"
	SignalOverbought         Signal = "OVERBOUGHT"
)

// TechnicalSignal pairs the raw RSI value with its band.
type TechnicalSignal struct {
	RSI    float64 `json:"rsi"`
	Signal Signal  `json:"signal"`
}

// EvaluateRSI computes the 14-period RSI over the trailing window of a
// chronologically ordered close series and classifies it. Requires at least
// RSIPeriod+1 closes.
func EvaluateRSI(closes []float64) (TechnicalSignal, error) {
	if len(closes) < RSIPeriod+1 {
		return TechnicalSignal{}, fmt.Errorf("%w: have %d closes, need %d", ErrInsufficientHistory, len(closes), RSIPeriod+1)
	}

	window := closes[len(closes)-(RSIPeriod+1):]

	var gainSum, lossSum float64
	for i := 1; i < len(window); i++ {
		change := window[i] - window[i-1]
		if change > 0 {
			gainSum += change
		} else {
			lossSum -= change
		}
	}

	avgGain := gainSum / RSIPeriod
	avgLoss := lossSum / RSIPeriod

	var rsi float64
	if avgLoss == 0 {
		// A pure-gain window has no defined RS ratio; RSI is 100 by convention.
		rsi = 100
	} else {
		rs := avgGain / avgLoss
		rsi = 100 - 100/(1+rs)
	}

	return TechnicalSignal{RSI: rsi, Signal: ClassifyRSI(rsi)}, nil
}

// ClassifyRSI maps an RSI value to its band. Exactly 45 is
// SLIGHTLY_OVERSOLD and exactly 70 is SLIGHTLY_OVERBOUGHT.
func ClassifyRSI(rsi float64) Signal {
	switch {
	case rsi < 30:
		return SignalOversold
	case rsi <= 45:
		return SignalSlightlyOversold
	case rsi < 55:
		return SignalNeutral
	case rsi <= 70:
		return SignalSlightlyOverbought
	default:
		return SignalOverbought
	}
}
