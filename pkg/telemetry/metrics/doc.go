// Package metrics provides Prometheus metrics collection for promock.
//
// # Overview
//
// The metrics package counts interception activity so long test suites can
// spot leaked overrides or unbounded instance tracking.
//
// # Metrics Categories
//
//   - Interception Metrics: wraps by kind, overrides by mode, restores, and
//     control operations applied to unwrapped entities
//   - Instance Metrics: tracked instances, prototype reassignments, and
//     instances reclaimed by the garbage collector
//
// # Usage
//
//	registry := prometheus.NewRegistry()
//	collector := metrics.NewCollector(&config.MetricsConfig{Enabled: true}, registry)
//
//	engine, err := mockify.NewEngine(mockify.Options{Metrics: collector})
//
// A nil *Collector records nothing.
package metrics
