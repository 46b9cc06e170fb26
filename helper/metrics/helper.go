package metrics

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// ParseLabels turns alternating names and values into constant labels.
// An odd number of arguments panics.
func ParseLabels(labelsWithValues ...string) prometheus.Labels {
	if len(labelsWithValues)%2 != 0 {
		panic(fmt.Sprintf("metrics: label %q has no value", labelsWithValues[len(labelsWithValues)-1]))
	}

	constLabels := make(prometheus.Labels, len(labelsWithValues)/2)

	for i := 0; i < len(labelsWithValues); i += 2 {
		constLabels[labelsWithValues[i]] = labelsWithValues[i+1]
	}

	return constLabels
}

// The collectors of NilMetrics style structs are nil; these helpers skip them.

func CounterInc(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// AddCounter adds v, skipping zero
func AddCounter(counter prometheus.Counter, v float64) {
	if counter != nil && v != 0 {
		counter.Add(v)
	}
}

func HistogramObserve(histogram prometheus.Histogram, v float64) {
	if histogram != nil {
		histogram.Observe(v)
	}
}

// MetricName2Help derives the help text from a metric name
func MetricName2Help(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
