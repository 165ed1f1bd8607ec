package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricFromPtr(t *testing.T) {
	v := 12.5
	sentinel := -1.0

	assert.Equal(t, MetricOf(12.5), MetricFromPtr(&v))
	assert.Equal(t, MissingMetric(), MetricFromPtr(nil))
	assert.Equal(t, MissingMetric(), MetricFromPtr(&sentinel))
}
