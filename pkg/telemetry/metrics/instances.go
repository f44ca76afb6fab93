package metrics

import (
	"mercator-hq/promock/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// InstanceMetrics tracks the instance tracker.
//
// Metrics:
//   - promock_instances_tracked: Instances currently tracked (gauge)
//   - promock_instances_retargeted_total: Prototype reassignments
//   - promock_instances_collected_total: Tracked instances reclaimed by GC
type InstanceMetrics struct {
	tracked    prometheus.Gauge
	retargeted prometheus.Counter
	collected  prometheus.Counter
}

// NewInstanceMetrics creates and registers instance metrics with the provided
// registry.
func NewInstanceMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *InstanceMetrics {
	m := &InstanceMetrics{
		tracked: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "instances_tracked",
				Help:      "Number of instances currently tracked for retargeting",
			},
		),

		retargeted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "instances_retargeted_total",
				Help:      "Total number of instance prototype reassignments",
			},
		),

		collected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "instances_collected_total",
				Help:      "Total number of tracked instances reclaimed by the garbage collector",
			},
		),
	}

	registry.MustRegister(m.tracked, m.retargeted, m.collected)

	return m
}

// Tracked increments the tracked gauge.
func (m *InstanceMetrics) Tracked() {
	m.tracked.Inc()
}

// Collected decrements the tracked gauge and counts the collection.
func (m *InstanceMetrics) Collected() {
	m.tracked.Dec()
	m.collected.Inc()
}

// Retargeted counts n prototype reassignments.
func (m *InstanceMetrics) Retargeted(n int) {
	m.retargeted.Add(float64(n))
}
