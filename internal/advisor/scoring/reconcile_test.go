package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile_MatrixTotality(t *testing.T) {
	cases := []struct {
		quant          QuantAction
		qual           Sentiment
		wantAction     FinalAction
		wantConfidence Confidence
	}{
		{QuantBuy, SentimentBullish, DecisionBuy, ConfidenceHigh},
		{QuantBuy, SentimentNeutral, DecisionBuy, ConfidenceMedium},
		{QuantBuy, SentimentBearish, DecisionWatch, ConfidenceMedium},
		{QuantWatch, SentimentBullish, DecisionBuy, ConfidenceMedium},
		{QuantWatch, SentimentNeutral, DecisionWatch, ConfidenceMedium},
		{QuantWatch, SentimentBearish, DecisionWatch, ConfidenceLow},
		{QuantAvoid, SentimentBullish, DecisionWatch, ConfidenceLow},
		{QuantAvoid, SentimentNeutral, DecisionAvoid, ConfidenceMedium},
		{QuantAvoid, SentimentBearish, DecisionAvoid, ConfidenceHigh},
	}
	for _, tc := range cases {
		t.Run(string(tc.quant)+"/"+string(tc.qual), func(t *testing.T) {
			d := Reconcile(
				QuantVerdict{Action: tc.quant},
				QualVerdict{Sentiment: tc.qual},
				false, DebtTierAcceptable,
			)
			assert.Equal(t, tc.wantAction, d.Action)
			assert.Equal(t, tc.wantConfidence, d.Confidence)
			assert.Equal(t, RiskLow, d.Risk)
			assert.False(t, d.Downgraded)
			assert.NotEmpty(t, d.MatrixRow)
		})
	}
}

func TestReconcile_MissingDataDowngradesOnce(t *testing.T) {
	d := Reconcile(
		QuantVerdict{Action: QuantBuy, MissingDataDetected: true},
		QualVerdict{Sentiment: SentimentBullish},
		true, DebtTierAcceptable,
	)

	// Base HIGH from the matrix, one step down, not two.
	assert.Equal(t, ConfidenceMedium, d.Confidence)
	assert.Equal(t, RiskMedium, d.Risk)
	assert.True(t, d.Downgraded)
}

func TestReconcile_QualOnlyMissingLowersConfidenceNotRisk(t *testing.T) {
	// All contributing metrics present; only the narrative stage lacked
	// verifiable sourcing. Confidence drops, risk stays LOW.
	d := Reconcile(
		QuantVerdict{Action: QuantBuy, MissingDataDetected: false},
		QualVerdict{Sentiment: SentimentBullish, MissingDataDetected: true},
		true, DebtTierVerySafe,
	)

	assert.Equal(t, RiskLow, d.Risk)
	assert.Equal(t, ConfidenceMedium, d.Confidence)
	assert.True(t, d.Downgraded)
}

func TestReconcile_DowngradeFloorsAtLow(t *testing.T) {
	d := Reconcile(
		QuantVerdict{Action: QuantWatch},
		QualVerdict{Sentiment: SentimentBearish},
		true, DebtTierAcceptable,
	)

	assert.Equal(t, DecisionWatch, d.Action)
	assert.Equal(t, ConfidenceLow, d.Confidence)
	assert.True(t, d.Downgraded)
}

func TestReconcile_RiskyDebtOverridesMissingData(t *testing.T) {
	d := Reconcile(
		QuantVerdict{Action: QuantAvoid},
		QualVerdict{Sentiment: SentimentBearish},
		true, DebtTierRisky,
	)

	assert.Equal(t, RiskHigh, d.Risk)
}

func TestReconcile_MatrixRowFormat(t *testing.T) {
	d := Reconcile(
		QuantVerdict{Action: QuantBuy},
		QualVerdict{Sentiment: SentimentBullish},
		false, DebtTierVerySafe,
	)

	assert.Equal(t, "QUANT_BUY+QUAL_BULLISH", d.MatrixRow)
}

func TestDowngradeConfidence_Idempotent(t *testing.T) {
	assert.Equal(t, ConfidenceMedium, DowngradeConfidence(ConfidenceHigh))
	assert.Equal(t, ConfidenceLow, DowngradeConfidence(ConfidenceMedium))
	assert.Equal(t, ConfidenceLow, DowngradeConfidence(ConfidenceLow))
	assert.Equal(t, DowngradeConfidence(ConfidenceLow), DowngradeConfidence(DowngradeConfidence(ConfidenceLow)))
}
