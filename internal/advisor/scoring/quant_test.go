package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func quantBreakdown(normalized int, missing bool) ScoreBreakdown {
	return ScoreBreakdown{
		Normalized:  normalized,
		MaxPossible: 100,
		MissingPE:   missing,
	}
}

func TestCombineQuant_StrongScoreAndCheapRSI(t *testing.T) {
	v := CombineQuant(quantBreakdown(65, false), TechnicalSignal{RSI: 40}, false)

	assert.Equal(t, QuantBuy, v.Action)
	assert.Equal(t, ConfidenceHigh, v.Confidence)
	assert.False(t, v.MissingDataDetected)
}

func TestCombineQuant_WeakScoreIsAvoid(t *testing.T) {
	v := CombineQuant(quantBreakdown(35, false), TechnicalSignal{RSI: 50}, false)

	assert.Equal(t, QuantAvoid, v.Action)
}

func TestCombineQuant_OverboughtIsAvoid(t *testing.T) {
	v := CombineQuant(quantBreakdown(65, false), TechnicalSignal{RSI: 75}, false)

	assert.Equal(t, QuantAvoid, v.Action)
}

func TestCombineQuant_DefaultIsWatch(t *testing.T) {
	cases := []struct {
		name       string
		normalized int
		rsi        float64
	}{
		{"mid score mid rsi", 50, 50},
		{"strong score but rsi not cheap", 80, 50},
		{"rsi at the buy boundary", 65, 45},
		{"rsi at the avoid boundary", 50, 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := CombineQuant(quantBreakdown(tc.normalized, false), TechnicalSignal{RSI: tc.rsi}, false)
			assert.Equal(t, QuantWatch, v.Action)
		})
	}
}

func TestCombineQuant_MissingRSISkipsRSIRules(t *testing.T) {
	// Rule 1 needs a defined RSI; a strong score alone is WATCH, not BUY.
	v := CombineQuant(quantBreakdown(65, false), TechnicalSignal{}, true)

	assert.Equal(t, QuantWatch, v.Action)
	assert.Equal(t, ConfidenceLow, v.Confidence)
	assert.True(t, v.MissingDataDetected)

	// Rule 2 still fires on the score alone.
	v = CombineQuant(quantBreakdown(35, false), TechnicalSignal{}, true)
	assert.Equal(t, QuantAvoid, v.Action)
}

func TestCombineQuant_MissingFundamentalLowersConfidence(t *testing.T) {
	v := CombineQuant(quantBreakdown(65, true), TechnicalSignal{RSI: 40}, false)

	assert.Equal(t, QuantBuy, v.Action)
	assert.Equal(t, ConfidenceLow, v.Confidence)
	assert.True(t, v.MissingDataDetected)
}
