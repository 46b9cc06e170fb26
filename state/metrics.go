package state

import (
	"github.com/dogechain-lab/objectchain/helper/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics represents the object store metrics
type Metrics struct {
	// Committed scratchpads
	flushes prometheus.Counter
	// Discarded scratchpads
	resets prometheus.Counter
	// Objects committed by kind of change
	createdObjects prometheus.Counter
	updatedObjects prometheus.Counter
	deletedObjects prometheus.Counter
	// Events carried by committed transactions
	events prometheus.Counter
	// Changes per committed batch
	batchSize prometheus.Histogram
}

// Register adds the collectors to the registerer, skipping nil ones
func (m *Metrics) Register(registerer prometheus.Registerer) {
	for _, c := range []prometheus.Counter{
		m.flushes,
		m.resets,
		m.createdObjects,
		m.updatedObjects,
		m.deletedObjects,
		m.events,
	} {
		if c != nil {
			registerer.MustRegister(c)
		}
	}

	if m.batchSize != nil {
		registerer.MustRegister(m.batchSize)
	}
}

func (m *Metrics) FlushesInc() {
	metrics.CounterInc(m.flushes)
}

func (m *Metrics) ResetsInc() {
	metrics.CounterInc(m.resets)
}

func (m *Metrics) AddCreatedObjects(n int) {
	metrics.AddCounter(m.createdObjects, float64(n))
}

func (m *Metrics) AddUpdatedObjects(n int) {
	metrics.AddCounter(m.updatedObjects, float64(n))
}

func (m *Metrics) AddDeletedObjects(n int) {
	metrics.AddCounter(m.deletedObjects, float64(n))
}

func (m *Metrics) AddEvents(n int) {
	metrics.AddCounter(m.events, float64(n))
}

func (m *Metrics) ObserveBatchSize(n int) {
	metrics.HistogramObserve(m.batchSize, float64(n))
}

func newCounter(namespace, name string, constLabels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   "state",
		Name:        name,
		Help:        metrics.MetricName2Help(name),
		ConstLabels: constLabels,
	})
}

// GetPrometheusMetrics return the object store metrics instance
func GetPrometheusMetrics(namespace string, labelsWithValues ...string) *Metrics {
	constLabels := metrics.ParseLabels(labelsWithValues...)

	return &Metrics{
		flushes:        newCounter(namespace, "flushes", constLabels),
		resets:         newCounter(namespace, "resets", constLabels),
		createdObjects: newCounter(namespace, "created_objects", constLabels),
		updatedObjects: newCounter(namespace, "updated_objects", constLabels),
		deletedObjects: newCounter(namespace, "deleted_objects", constLabels),
		events:         newCounter(namespace, "events", constLabels),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "state",
			Name:        "flush_batch_size",
			Help:        metrics.MetricName2Help("flush_batch_size"),
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
}

// NilMetrics will return the non operational object store metrics
func NilMetrics() *Metrics {
	return &Metrics{}
}
