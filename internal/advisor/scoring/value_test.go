package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_AllMetricsPresent(t *testing.T) {
	s := NewScorer(NewBenchmarks())

	b := s.Score(MetricOf(12), MetricOf(0.22), MetricOf(10), "Technology")

	assert.Equal(t, 100, b.Raw)
	assert.Equal(t, 100, b.MaxPossible)
	assert.Equal(t, 100, b.Normalized)
	assert.Equal(t, DebtTierVerySafe, b.DebtTier)
	assert.False(t, b.MissingAny())
	assert.Empty(t, b.Warnings)
}

func TestScore_MissingDebtEquityShrinksDenominator(t *testing.T) {
	s := NewScorer(NewBenchmarks())

	b := s.Score(MetricOf(12), MetricOf(0.22), MissingMetric(), "Technology")

	assert.Equal(t, 70, b.Raw)
	assert.Equal(t, 70, b.MaxPossible)
	assert.Equal(t, 100, b.Normalized)
	assert.Equal(t, DebtTierUnknown, b.DebtTier)
	assert.True(t, b.MissingDebtEquity)
	assert.True(t, b.MissingAny())
	require.Len(t, b.Warnings, 1)
	assert.Contains(t, b.Warnings[0], "Debt/Equity is N/A")
}

func TestScore_PETiers(t *testing.T) {
	s := NewScorer(NewBenchmarks())

	cases := []struct {
		name string
		pe   float64
		want int
	}{
		{"excellent", 10, 35},
		{"good", 18, 25},
		{"acceptable", 25, 10},
		{"expensive", 45, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := s.Score(MetricOf(tc.pe), MissingMetric(), MissingMetric(), "Technology")
			assert.Equal(t, tc.want, b.Raw)
			assert.Equal(t, WeightPE, b.MaxPossible)
		})
	}
}

func TestScore_ROETiers(t *testing.T) {
	s := NewScorer(NewBenchmarks())

	cases := []struct {
		name string
		roe  float64
		want int
	}{
		{"excellent", 0.25, 35},
		{"good", 0.17, 25},
		{"decent", 0.12, 10},
		{"weak", 0.05, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := s.Score(MissingMetric(), MetricOf(tc.roe), MissingMetric(), "Technology")
			assert.Equal(t, tc.want, b.Raw)
			assert.Equal(t, WeightROE, b.MaxPossible)
		})
	}
}

func TestScore_DebtTiersAreSectorAware(t *testing.T) {
	s := NewScorer(NewBenchmarks())

	// Utilities tolerate far more leverage than Technology.
	tech := s.Score(MissingMetric(), MissingMetric(), MetricOf(110), "Technology")
	util := s.Score(MissingMetric(), MissingMetric(), MetricOf(110), "Utilities")

	assert.Equal(t, DebtTierRisky, tech.DebtTier)
	assert.Equal(t, 0, tech.Raw)
	assert.Equal(t, DebtTierAcceptable, util.DebtTier)
	assert.Equal(t, 20, util.Raw)
}

func TestScore_UnknownSectorUsesDefaultBenchmark(t *testing.T) {
	s := NewScorer(NewBenchmarks())

	// Default benchmark: normal 80, risky above 150. D/E here is percent-scale.
	b := s.Score(MissingMetric(), MissingMetric(), MetricOf(100), "Shipping Containers")

	assert.Equal(t, DebtTierMonitor, b.DebtTier)
	assert.Equal(t, 10, b.Raw)
}

func TestScore_AllMissingYieldsZeroNormalized(t *testing.T) {
	s := NewScorer(NewBenchmarks())

	b := s.Score(MissingMetric(), MissingMetric(), MissingMetric(), "Technology")

	assert.Equal(t, 0, b.Raw)
	assert.Equal(t, 0, b.MaxPossible)
	assert.Equal(t, 0, b.Normalized)
	assert.Len(t, b.Warnings, 3)
}

func TestScore_NormalizedNeverExceedsRawRatio(t *testing.T) {
	s := NewScorer(NewBenchmarks())

	// Partial credit across all three metrics: 25 + 10 + 20 of 100.
	b := s.Score(MetricOf(18), MetricOf(0.12), MetricOf(30), "Technology")

	assert.Equal(t, 55, b.Raw)
	assert.Equal(t, 100, b.MaxPossible)
	assert.Equal(t, 55, b.Normalized)
	assert.Equal(t, DebtTierAcceptable, b.DebtTier)
}
