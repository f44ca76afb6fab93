// Package telemetry groups the observability packages used by promock.
//
// # Components
//
//   - logging: structured logging on log/slog
//   - metrics: Prometheus counters and gauges for interception activity
//
// # Usage
//
//	cfg := config.GetConfig()
//	engine, err := mockify.NewEngineFromConfig(cfg, prometheus.NewRegistry())
//
// Both are configured through the telemetry section of the configuration
// file. An engine built with NewEngine and no logger or collector records
// nothing.
package telemetry
