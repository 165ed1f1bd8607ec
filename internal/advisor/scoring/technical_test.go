package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateRSI_InsufficientHistory(t *testing.T) {
	closes := make([]float64, RSIPeriod) // one short of the minimum

	_, err := EvaluateRSI(closes)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

func TestEvaluateRSI_PureGainWindow(t *testing.T) {
	closes := make([]float64, RSIPeriod+1)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	sig, err := EvaluateRSI(closes)

	require.NoError(t, err)
	assert.Equal(t, 100.0, sig.RSI)
	assert.Equal(t, SignalOverbought, sig.Signal)
}

func TestEvaluateRSI_BalancedWindowIsNeutral(t *testing.T) {
	// Alternating +1/-1 deltas: avg gain == avg loss, RSI 50.
	closes := make([]float64, RSIPeriod+1)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		if i%2 == 1 {
			closes[i] = closes[i-1] + 1
		} else {
			closes[i] = closes[i-1] - 1
		}
	}

	sig, err := EvaluateRSI(closes)

	require.NoError(t, err)
	assert.InDelta(t, 50.0, sig.RSI, 1e-9)
	assert.Equal(t, SignalNeutral, sig.Signal)
}

func TestEvaluateRSI_UsesTrailingWindowOnly(t *testing.T) {
	// A long declining prefix followed by a pure-gain trailing window; only
	// the trailing 15 closes may contribute.
	closes := []float64{500, 400, 300, 200}
	for i := 0; i <= RSIPeriod; i++ {
		closes = append(closes, 100+float64(i))
	}

	sig, err := EvaluateRSI(closes)

	require.NoError(t, err)
	assert.Equal(t, 100.0, sig.RSI)
}

func TestClassifyRSI_Bands(t *testing.T) {
	cases := []struct {
		rsi  float64
		want Signal
	}{
		{10, SignalOversold},
		{29.99, SignalOversold},
		{30, SignalSlightlyOversold},
		{45, SignalSlightlyOversold},
		{45.01, SignalNeutral},
		{54.99, SignalNeutral},
		{55, SignalSlightlyOverbought},
		{70, SignalSlightlyOverbought},
		{70.01, SignalOverbought},
		{95, SignalOverbought},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, ClassifyRSI(tc.rsi), "rsi=%.2f", tc.rsi)
	}
}
