// Package config provides configuration management for promock.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. Every field has a usable
// zero value, so an empty document is a valid configuration.
//
// # Configuration Loading
//
// Configuration can be loaded in three ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("promock.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("promock.yaml")
//
//  3. From bytes already in memory:
//     cfg, err := config.Parse(data)
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention PROMOCK_SECTION_FIELD:
//
//   - PROMOCK_ENGINE_LENIENT overrides engine.lenient
//   - PROMOCK_ENGINE_DESCRIPTOR_SOURCE overrides engine.descriptor_source
//   - PROMOCK_ENGINE_DISABLE_INSTANCE_TRACKING overrides engine.disable_instance_tracking
//   - PROMOCK_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//   - PROMOCK_TELEMETRY_LOGGING_FORMAT overrides telemetry.logging.format
//   - PROMOCK_TELEMETRY_METRICS_ENABLED overrides telemetry.metrics.enabled
//   - PROMOCK_TELEMETRY_METRICS_NAMESPACE overrides telemetry.metrics.namespace
//
// # Example Configuration
//
//	engine:
//	  lenient: false
//	  descriptor_source: "override"
//	  disable_instance_tracking: false
//
//	telemetry:
//	  logging:
//	    level: "debug"
//	    format: "text"
//	  metrics:
//	    enabled: true
//	    namespace: "promock"
//
// # Singleton Pattern
//
// Initialize stores a process-wide configuration that the default
// interception engine picks up the first time it is used:
//
//	if err := config.Initialize("promock.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
// For testing, prefer explicit Config instances over the global singleton.
package config
