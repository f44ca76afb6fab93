package metrics

import (
	"mercator-hq/promock/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector is the main orchestrator for all Prometheus metrics in promock.
// It manages metric registration and provides a unified interface for
// recording interception activity.
//
// A nil *Collector is valid and records nothing, so engines built without
// metrics need no special casing.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Wrap/override/restore activity
	interceptionMetrics *InterceptionMetrics

	// Instance tracker activity
	instanceMetrics *InstanceMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a fresh registry
// is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "promock",
//	}
//	collector := metrics.NewCollector(cfg, prometheus.NewRegistry())
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// Set defaults if not specified
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}
	c.interceptionMetrics = NewInterceptionMetrics(cfg, registry)
	c.instanceMetrics = NewInstanceMetrics(cfg, registry)

	return c
}

// Registry returns the registry the collector's metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

func (c *Collector) enabled() bool {
	return c != nil && c.config.Enabled
}

// RecordWrap records a newly wrapped entity.
//
// Parameters:
//   - kind: Entity kind ("object", "function", "class")
func (c *Collector) RecordWrap(kind string) {
	if !c.enabled() {
		return
	}
	c.interceptionMetrics.RecordWrap(kind)
}

// RecordOverride records an override.
//
// Parameters:
//   - mode: "full" or "partial"
func (c *Collector) RecordOverride(mode string) {
	if !c.enabled() {
		return
	}
	c.interceptionMetrics.RecordOverride(mode)
}

// RecordRestore records a restore of a wrapped entity.
func (c *Collector) RecordRestore() {
	if !c.enabled() {
		return
	}
	c.interceptionMetrics.RecordRestore()
}

// RecordUsageError records a control operation applied to an unwrapped
// entity.
//
// Parameters:
//   - operation: Control operation name (e.g., "override", "restore")
func (c *Collector) RecordUsageError(operation string) {
	if !c.enabled() {
		return
	}
	c.interceptionMetrics.RecordUsageError(operation)
}

// InstanceTracked records an instance added to a tracker.
func (c *Collector) InstanceTracked() {
	if !c.enabled() {
		return
	}
	c.instanceMetrics.Tracked()
}

// InstanceCollected records a tracked instance that was garbage collected,
// whether reported by a cleanup or found empty while pruning.
func (c *Collector) InstanceCollected() {
	if !c.enabled() {
		return
	}
	c.instanceMetrics.Collected()
}

// InstancesRetargeted records n instances whose prototype was reassigned.
func (c *Collector) InstancesRetargeted(n int) {
	if !c.enabled() || n <= 0 {
		return
	}
	c.instanceMetrics.Retargeted(n)
}
