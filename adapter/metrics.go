package adapter

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/joshuapare/axtree/pkg/tree"
)

const (
	metricsNamespace = "axtree"
	metricsSubsystem = "adapter"
)

type metrics struct {
	applied       prometheus.Counter
	rejected      *prometheus.CounterVec
	changes       *prometheus.CounterVec
	nodes         prometheus.Gauge
	applyDuration prometheus.Histogram
	actions       *prometheus.CounterVec
}

// newMetrics builds the collectors. A nil reg leaves them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		applied: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "updates_applied_total",
			Help:      "Tree updates accepted, including the initial tree.",
		}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "updates_rejected_total",
			Help:      "Tree updates rejected, by validation error kind.",
		}, []string{"kind"}),
		changes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "changes_total",
			Help:      "Change notifications produced, by change kind.",
		}, []string{"kind"}),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "nodes",
			Help:      "Nodes in the tree after the last accepted update.",
		}),
		applyDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "apply_duration_seconds",
			Help:      "Time spent validating and committing an update.",
			Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		actions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "actions_total",
			Help:      "Action requests, by result.",
		}, []string{"result"}),
	}
}

func (m *metrics) observeApplied(batch *tree.ChangeBatch, nodes int) {
	m.applied.Inc()
	m.nodes.Set(float64(nodes))
	for kind, n := range batch.CountByKind() {
		m.changes.WithLabelValues(kind.String()).Add(float64(n))
	}
}

func (m *metrics) observeRejected(err error) {
	m.rejected.WithLabelValues(rejectKind(err)).Inc()
}

func rejectKind(err error) string {
	var verr *tree.ValidationError
	if errors.As(err, &verr) {
		return verr.Kind.String()
	}
	return "other"
}
