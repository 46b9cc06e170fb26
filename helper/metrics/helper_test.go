package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestParseLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		prometheus.Labels{"chain": "objectchain", "node": "a"},
		ParseLabels("chain", "objectchain", "node", "a"),
	)

	assert.Empty(t, ParseLabels())

	assert.Panics(t, func() {
		ParseLabels("dangling")
	})
}

func TestNilSafeHelpers(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		CounterInc(nil)
		AddCounter(nil, 2)
		HistogramObserve(nil, 1)
	})

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "flushes"})

	CounterInc(counter)
	AddCounter(counter, 2)

	assert.Equal(t, float64(3), testutil.ToFloat64(counter))

	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "batch_size"})

	HistogramObserve(histogram, 4)

	assert.Equal(t, 1, testutil.CollectAndCount(histogram))
}

func TestMetricName2Help(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "created objects", MetricName2Help("created_objects"))
}
