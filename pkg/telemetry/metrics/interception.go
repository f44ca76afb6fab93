package metrics

import (
	"mercator-hq/promock/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// InterceptionMetrics tracks control operations on wrapped entities.
//
// Metrics:
//   - promock_wraps_total: Wrapped entities by kind
//   - promock_overrides_total: Overrides by mode
//   - promock_restores_total: Restores
//   - promock_usage_errors_total: Control operations on unwrapped entities
type InterceptionMetrics struct {
	wrapsTotal       *prometheus.CounterVec
	overridesTotal   *prometheus.CounterVec
	restoresTotal    prometheus.Counter
	usageErrorsTotal *prometheus.CounterVec
}

// NewInterceptionMetrics creates and registers interception metrics with the
// provided registry.
func NewInterceptionMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *InterceptionMetrics {
	im := &InterceptionMetrics{
		wrapsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "wraps_total",
				Help:      "Total number of entities wrapped",
			},
			[]string{"kind"},
		),

		overridesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "overrides_total",
				Help:      "Total number of overrides applied",
			},
			[]string{"mode"},
		),

		restoresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "restores_total",
				Help:      "Total number of restores",
			},
		),

		usageErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "usage_errors_total",
				Help:      "Total number of control operations applied to unwrapped entities",
			},
			[]string{"operation"},
		),
	}

	registry.MustRegister(
		im.wrapsTotal,
		im.overridesTotal,
		im.restoresTotal,
		im.usageErrorsTotal,
	)

	return im
}

// RecordWrap increments the wrap counter for kind.
func (im *InterceptionMetrics) RecordWrap(kind string) {
	im.wrapsTotal.WithLabelValues(kind).Inc()
}

// RecordOverride increments the override counter for mode.
func (im *InterceptionMetrics) RecordOverride(mode string) {
	im.overridesTotal.WithLabelValues(mode).Inc()
}

// RecordRestore increments the restore counter.
func (im *InterceptionMetrics) RecordRestore() {
	im.restoresTotal.Inc()
}

// RecordUsageError increments the usage error counter for operation.
func (im *InterceptionMetrics) RecordUsageError(operation string) {
	im.usageErrorsTotal.WithLabelValues(operation).Inc()
}
