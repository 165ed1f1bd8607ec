package scoring

// Metric is a fundamental ratio that may be absent. Absence is a first-class
// state: a missing Metric is excluded from both the points earned and the
// maximum attainable points of a score, never substituted with zero.
type Metric struct {
	Value float64
	Valid bool
}

// MetricOf returns a present Metric.
func MetricOf(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// MissingMetric returns an absent Metric.
func MissingMetric() Metric {
	return Metric{}
}

// MetricFromPtr converts a provider's nullable field. Providers that cannot
// represent null report -1 for an unknown ratio; that sentinel is missing
// too.
func MetricFromPtr(p *float64) Metric {
	if p == nil || *p == -1 {
		return MissingMetric()
	}
	return MetricOf(*p)
}
